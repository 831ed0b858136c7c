package main

import (
	"errors"
	"fmt"

	"github.com/rpggio/checkmaster/internal/domain/session"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard every edit and restore the default checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()

			if !yes {
				return errors.New("reset discards all edits; pass --yes to confirm")
			}

			ctrl, err := app.openController(cmd.Context())
			if err != nil {
				return err
			}
			p := ctrl.Dispatch(cmd.Context(), session.ResetToDefault{})
			if ctrl.LastSavedAt().IsZero() {
				return errors.New("checklist was reset in memory but could not be saved")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %q to %d default sections\n", p.ProjectName, len(p.Sections))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
