package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/alexanderramin/tasktory/internal/export"
	"github.com/alexanderramin/tasktory/internal/service"
	"github.com/spf13/cobra"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage project members and their allocation",
	}

	cmd.AddCommand(
		newMemberListCmd(app),
		newMemberAvailableCmd(app),
		newMemberAddCmd(app),
		newMemberUpdateCmd(app),
		newMemberRemoveCmd(app),
		newMemberExportCmd(app),
	)

	return cmd
}

func rosterRows(entries []service.RosterEntry) []formatter.RosterRow {
	rows := make([]formatter.RosterRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, formatter.RosterRow{
			MembershipID:   e.Membership.ID,
			Name:           e.Member.Name,
			Role:           e.Membership.Role,
			Responsibility: e.Membership.Responsibility,
			Span:           e.Membership.Span(),
			Allocation:     e.Membership.AllocationPercent,
			Utilization:    e.Utilization,
		})
	}
	return rows
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's active members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			entries, err := app.Assignments.ListProjectMembers(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRoster(p.Name, rosterRows(entries)))
			return nil
		},
	}
}

func newMemberAvailableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "available PROJECT",
		Short: "List team members that can still join a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			members, err := app.Assignments.AvailableMembers(ctx, projectID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintln(out, "No available team members.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatAvailable(members))
			return nil
		},
	}
}

// assignFlags binds the flags shared by member add and update.
type assignFlags struct {
	member, role, responsibility, start, end string
	allocation                               int
}

func (f *assignFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.role, "role", "", "Role on the project")
	cmd.Flags().StringVar(&f.responsibility, "responsibility", "", "Responsibility on the project")
	cmd.Flags().StringVar(&f.start, "start", "", "Member start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "Member end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.allocation, "allocation", 0, "Allocation percent; omit to compute it from the dates")
}

// applyToDraft replays the given flags onto d in form order: dates first,
// then an explicit allocation, which makes the draft manual.
func (f *assignFlags) applyToDraft(cmd *cobra.Command, d *allocation.Draft) error {
	flags := cmd.Flags()
	if flags.Changed("start") {
		t, err := parseOptionalDate("start", f.start)
		if err != nil {
			return err
		}
		d.SetStart(derefTime(t))
	}
	if flags.Changed("end") {
		t, err := parseOptionalDate("end", f.end)
		if err != nil {
			return err
		}
		d.SetEnd(derefTime(t))
	}
	if flags.Changed("allocation") {
		d.SetAllocation(f.allocation)
	}
	return nil
}

func anyFlagChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

var assignFlagNames = []string{"member", "role", "responsibility", "start", "end", "allocation"}

func newMemberAddCmd(app *App) *cobra.Command {
	var f assignFlags

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Assign a team member to a project",
		Long: `Assign a team member to a project.

Without flags on a terminal an interactive form opens. The allocation follows
the member's dates until it is set explicitly (--allocation or ctrl+e in the
form); from then on it is kept as entered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var a service.Assignment
			if !anyFlagChanged(cmd, assignFlagNames...) && app.interactive() {
				a, err = addInteractively(ctx, cmd, app, projectID)
			} else {
				a, err = addFromFlags(ctx, cmd, app, projectID, &f)
			}
			if err != nil {
				return err
			}

			pm, err := app.Assignments.AddProjectMember(ctx, projectID, a)
			if err != nil {
				return err
			}
			tm, err := app.Team.GetByID(ctx, pm.TeamMemberID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Assigned %s [%s]\n", tm.Name, formatter.TruncID(pm.ID))
			fmt.Fprintln(out, formatter.FormatDraft(a.Draft, tm.Name, pm.Role))
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&f.member, "member", "", "Team member ID, ID prefix or email")

	return cmd
}

func addFromFlags(ctx context.Context, cmd *cobra.Command, app *App, projectID string, f *assignFlags) (service.Assignment, error) {
	if f.member == "" {
		return service.Assignment{}, fmt.Errorf("--member is required")
	}
	memberID, err := resolveTeamMemberID(ctx, app, f.member)
	if err != nil {
		return service.Assignment{}, err
	}
	draft, err := app.Assignments.OpenDraft(ctx, projectID, memberID)
	if err != nil {
		return service.Assignment{}, err
	}
	if err := f.applyToDraft(cmd, draft); err != nil {
		return service.Assignment{}, err
	}
	return service.Assignment{Role: f.role, Responsibility: f.responsibility, Draft: draft}, nil
}

func addInteractively(ctx context.Context, cmd *cobra.Command, app *App, projectID string) (service.Assignment, error) {
	candidates, err := app.Assignments.AvailableMembers(ctx, projectID)
	if err != nil {
		return service.Assignment{}, err
	}
	if len(candidates) == 0 {
		return service.Assignment{}, fmt.Errorf("no available team members to assign")
	}
	draft, err := app.Assignments.OpenDraft(ctx, projectID, "")
	if err != nil {
		return service.Assignment{}, err
	}

	form := newAssignForm(draft, candidates, "", "")
	if err := runAssignForm(cmd.InOrStdin(), cmd.OutOrStdout(), form); err != nil {
		return service.Assignment{}, err
	}
	role, resp := form.assignment()
	return service.Assignment{Role: role, Responsibility: resp, Draft: draft}, nil
}

func newMemberUpdateCmd(app *App) *cobra.Command {
	var f assignFlags

	cmd := &cobra.Command{
		Use:   "update PROJECT MEMBER",
		Short: "Change a member's role, dates or allocation",
		Long: `Change a member's role, dates or allocation.

The stored allocation is kept unless a date changes, in which case it is
recomputed from the dates, or --allocation sets it explicitly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			membershipID, err := resolveMembershipID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}
			entry, err := findRosterEntry(ctx, app, projectID, membershipID)
			if err != nil {
				return err
			}
			draft, err := app.Assignments.ResumeDraft(ctx, projectID, membershipID)
			if err != nil {
				return err
			}

			a := service.Assignment{
				Role:           entry.Membership.Role,
				Responsibility: entry.Membership.Responsibility,
				Draft:          draft,
			}
			if !anyFlagChanged(cmd, assignFlagNames...) && app.interactive() {
				form := newAssignForm(draft, nil, a.Role, a.Responsibility)
				if err := runAssignForm(cmd.InOrStdin(), cmd.OutOrStdout(), form); err != nil {
					return err
				}
				a.Role, a.Responsibility = form.assignment()
			} else {
				if cmd.Flags().Changed("role") {
					a.Role = f.role
				}
				if cmd.Flags().Changed("responsibility") {
					a.Responsibility = f.responsibility
				}
				if err := f.applyToDraft(cmd, draft); err != nil {
					return err
				}
			}

			pm, err := app.Assignments.UpdateProjectMember(ctx, projectID, membershipID, a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated %s [%s]\n", entry.Member.Name, formatter.TruncID(pm.ID))
			fmt.Fprintln(out, formatter.FormatDraft(draft, entry.Member.Name, pm.Role))
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func findRosterEntry(ctx context.Context, app *App, projectID, membershipID string) (service.RosterEntry, error) {
	roster, err := app.Assignments.ListProjectMembers(ctx, projectID)
	if err != nil {
		return service.RosterEntry{}, err
	}
	for _, e := range roster {
		if e.Membership.ID == membershipID {
			return e, nil
		}
	}
	return service.RosterEntry{}, fmt.Errorf("project member %w", service.ErrNotFound)
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT MEMBER",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			membershipID, err := resolveMembershipID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}
			if err := app.Assignments.RemoveProjectMember(ctx, projectID, membershipID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed member %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newMemberExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export PROJECT",
		Short: "Export a project's roster to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			entries, err := app.Assignments.ListProjectMembers(ctx, projectID)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = strings.ToLower(p.DisplayID()) + "-roster.xlsx"
			}
			if err := export.SaveRoster(path, p, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d members to %s\n", len(entries), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (.xlsx); defaults to <project>-roster.xlsx")

	return cmd
}
