package cli

import (
	"github.com/alexanderramin/tasktory/internal/service"
	"github.com/alexanderramin/tasktory/internal/settings"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Team        service.TeamService
	Assignments service.AssignmentService
	Templates   service.TemplateService
	Status      service.StatusService
	Settings    *settings.Store

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tasktory" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasktory",
		Short:         "Project staffing and allocation planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newTeamCmd(app),
		newMemberCmd(app),
		newTemplateCmd(app),
		newAllocationCmd(app),
		newStatusCmd(app),
		newSettingsCmd(app),
	)

	return root
}
