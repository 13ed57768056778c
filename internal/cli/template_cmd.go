package cli

import (
	"fmt"

	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage project templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
		newTemplateAddCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(cmd.Context(), category)
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateList(templates))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only templates in this category")
	return cmd
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TEMPLATE",
		Short: "Show template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTemplateID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Templates.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplate(t))
			return nil
		},
	}
}

func newTemplateAddCmd(app *App) *cobra.Command {
	var name, description, category string
	var duration, teamSize int
	var skills []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project template",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.ProjectTemplate{
				Name:           name,
				Description:    description,
				Category:       category,
				RequiredSkills: trimAll(skills),
				TeamSize:       teamSize,
			}
			if cmd.Flags().Changed("duration") {
				t.EstimatedDays = &duration
			}
			if err := app.Templates.Create(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created template %s [%s]\n", t.Name, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().StringVar(&description, "description", "", "Description copied to new projects")
	cmd.Flags().StringVar(&category, "category", "", "Category (e.g. web, mobile, ai)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Estimated duration in days")
	cmd.Flags().IntVar(&teamSize, "team-size", 1, "Expected team size")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Required skills (comma-separated)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
