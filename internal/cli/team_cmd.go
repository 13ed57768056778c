package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the team directory",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamShowCmd(app),
		newTeamUpdateCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

// teamFields binds the profile flags shared by add and update.
type teamFields struct {
	name, email, position, department, level, notes string
	experience, rate                                int
	skills                                          []string
	available                                       bool
}

func (f *teamFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Full name")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address (unique)")
	cmd.Flags().StringVar(&f.position, "position", "", "Job title")
	cmd.Flags().StringVar(&f.department, "department", "", "Department")
	cmd.Flags().IntVar(&f.experience, "experience", 0, "Years of experience")
	cmd.Flags().StringSliceVar(&f.skills, "skills", nil, "Comma-separated skills")
	cmd.Flags().StringVar(&f.level, "skill-level", "", "Skill level (Junior|Mid|Senior)")
	cmd.Flags().BoolVar(&f.available, "available", true, "Available for new assignments")
	cmd.Flags().IntVar(&f.rate, "rate", 0, "Hourly rate")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
}

// apply copies every flag the user set onto m.
func (f *teamFields) apply(cmd *cobra.Command, m *domain.TeamMember) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		m.Name = f.name
	}
	if flags.Changed("email") {
		m.Email = f.email
	}
	if flags.Changed("position") {
		m.Position = f.position
	}
	if flags.Changed("department") {
		m.Department = f.department
	}
	if flags.Changed("experience") {
		m.ExperienceYears = f.experience
	}
	if flags.Changed("skills") {
		m.Skills = trimAll(f.skills)
	}
	if flags.Changed("skill-level") {
		m.SkillLevel = parseSkillLevel(f.level)
	}
	if flags.Changed("available") {
		m.Available = f.available
	}
	if flags.Changed("rate") {
		rate := f.rate
		m.HourlyRate = &rate
	}
	if flags.Changed("notes") {
		m.Notes = f.notes
	}
}

func newTeamAddCmd(app *App) *cobra.Command {
	var f teamFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.TeamMember{Available: true}
			f.apply(cmd, m)
			if err := app.Team.Create(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s <%s> [%s]\n", m.Name, m.Email, formatter.TruncID(m.ID))
			return nil
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("position")

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	var department, level string
	var available bool
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := repository.TeamMemberFilter{
				Department: department,
				SkillLevel: parseSkillLevel(level),
				Limit:      limit,
				Offset:     offset,
			}
			if cmd.Flags().Changed("available") {
				filter.Available = &available
			}

			members, err := app.Team.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintln(out, "No team members found.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatTeamList(members))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Only this department")
	cmd.Flags().StringVar(&level, "skill-level", "", "Only this skill level (Junior|Mid|Senior)")
	cmd.Flags().BoolVar(&available, "available", false, "Only available (true) or busy (false) members")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rows to skip")

	return cmd
}

func newTeamShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a team member's profile and load",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTeamMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Team.GetByID(ctx, id)
			if err != nil {
				return err
			}
			util, err := app.Assignments.Utilization(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTeamMember(m, util))
			return nil
		},
	}
}

func newTeamUpdateCmd(app *App) *cobra.Command {
	var f teamFields

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTeamMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Team.GetByID(ctx, id)
			if err != nil {
				return err
			}
			f.apply(cmd, m)
			if err := app.Team.Update(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s <%s>\n", m.Name, m.Email)
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a team member without active assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTeamMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed team member %s\n", args[0])
			return nil
		},
	}
}

// parseSkillLevel accepts any casing ("senior", "SENIOR").
func parseSkillLevel(s string) domain.SkillLevel {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return domain.SkillLevel(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
