package cli

import (
	"fmt"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAllocationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocation",
		Short: "Allocation helpers",
	}
	cmd.AddCommand(newAllocationCalcCmd(app))
	return cmd
}

func newAllocationCalcCmd(app *App) *cobra.Command {
	var projectRef, projectStart, projectEnd, start, end string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a member's allocation from their dates",
		Long: `Compute a member's allocation from their dates.

The allocation is the member's share of the project duration, rounded half up
and clamped to 0-100. When either span is incomplete or the project has zero
length the default of 100% applies.`,
		Example: `  tasktory allocation calc --project-start 2024-01-01 --project-end 2024-01-31 --start 2024-01-01 --end 2024-01-16
  tasktory allocation calc --project WEB01 --start 2024-03-01 --end 2024-03-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := allocation.ParseDateSpan(projectStart, projectEnd)
			if err != nil {
				return err
			}
			if projectRef != "" {
				ctx := cmd.Context()
				projectID, err := resolveProjectID(ctx, app, projectRef)
				if err != nil {
					return err
				}
				p, err := app.Projects.GetByID(ctx, projectID)
				if err != nil {
					return err
				}
				project = p.Window()
			}
			member, err := allocation.ParseDateSpan(start, end)
			if err != nil {
				return err
			}

			pct, ok := allocation.TryCompute(member, project)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAllocation(member, project, pct, ok))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Take the project window from a stored project")
	cmd.Flags().StringVar(&projectStart, "project-start", "", "Project start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectEnd, "project-end", "", "Project end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Member start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Member end date (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("project", "project-start")
	cmd.MarkFlagsMutuallyExclusive("project", "project-end")

	return cmd
}
