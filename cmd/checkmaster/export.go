package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		scope  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report snapshot of the checklist as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()

			sc := checklist.Scope(scope)
			if !sc.Valid() {
				return fmt.Errorf("unknown scope %q (want active or all)", scope)
			}
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			ctrl, err := app.openController(cmd.Context())
			if err != nil {
				return err
			}
			export := ctrl.ExportSnapshot(sc)

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := writeExport(out, format, export); err != nil {
				return err
			}
			app.logger.Info("checklist exported", "scope", scope, "sections", len(export.Sections), "file_name", export.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&scope, "scope", string(checklist.ScopeActive), "Sections to export: active or all")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func writeExport(w io.Writer, format string, export checklist.Export) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(export)
}
