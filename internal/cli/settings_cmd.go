package cli

import (
	"fmt"

	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/alexanderramin/tasktory/internal/settings"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change application settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsGetCmd(app),
		newSettingsSetCmd(app),
		newSettingsResetCmd(app),
		newSettingsKeysCmd(),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all settings (secrets masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(s.View()))
			return nil
		},
	}
}

func newSettingsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one setting's raw value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := settings.ParseKey(args[0])
			if err != nil {
				return err
			}
			s, err := app.Settings.Load()
			if err != nil {
				return err
			}
			v, err := s.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := settings.ParseKey(args[0])
			if err != nil {
				return err
			}
			s, err := app.Settings.Load()
			if err != nil {
				return err
			}
			updated, err := s.Apply(key, args[1])
			if err != nil {
				return err
			}
			if err := app.Settings.Save(updated); err != nil {
				return err
			}

			shown := args[1]
			if key.Secret() {
				shown = "***"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, shown)
			return nil
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A malformed file is overwritten as well.
			s, err := app.Settings.Load()
			if err != nil {
				s = settings.Defaults()
			}
			if err := app.Settings.Save(s.Reset()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings reset to defaults (%s)\n", app.Settings.Path())
			return nil
		},
	}
}

func newSettingsKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List recognised setting keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, k := range settings.Keys() {
				if k.Secret() {
					fmt.Fprintf(out, "%s %s\n", k, formatter.Dim("(secret)"))
					continue
				}
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
}
