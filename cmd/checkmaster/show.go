package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print sections with their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()

			ctrl, err := app.openController(cmd.Context())
			if err != nil {
				return err
			}
			p := ctrl.Snapshot()
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			case "text":
				fmt.Fprintf(out, "%s\n\n", p.ProjectName)
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "\tID\tSECTION\tDONE\tPROGRESS")
				for _, s := range p.Sections {
					marker := ""
					if s.ID == p.ActiveSectionID {
						marker = "*"
					}
					done, total := s.Counts()
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%d%%\n", marker, s.ID, s.Title, done, total, s.Progress())
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}
