package cli

import (
	"fmt"

	"github.com/alexanderramin/tasktory/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show project and team totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Status.Overview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(o))
			return nil
		},
	}
}
