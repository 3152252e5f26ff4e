package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"

	"tasklistgen/config"
	"tasklistgen/services"
)

// exportInput mirrors the body accepted by POST /api/tasklist/export.
type exportInput struct {
	AssessmentTasklist  services.Section `json:"assessment_tasklist"`
	DevelopmentTasklist services.Section `json:"development_tasklist"`
}

func newTasklistCommand(app *pocketbase.PocketBase, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: "Generate and export tasklist workbooks without starting the server",
	}
	cmd.AddCommand(newExportCommand(), newGenerateCommand(app, cfg))
	return cmd
}

func newExportCommand() *cobra.Command {
	var input, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write prepared assessment and development rows to an .xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			var in exportInput
			if err := json.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse input %s: %w", input, err)
			}
			if err := services.ExportTasklist(in.AssessmentTasklist, in.DevelopmentTasklist, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Excel exported successfully: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "JSON file with assessment_tasklist and development_tasklist")
	cmd.Flags().StringVar(&out, "out", "", "destination .xlsx path")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newGenerateCommand(app *pocketbase.PocketBase, cfg config.Config) *cobra.Command {
	var p services.TasklistParams
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a tasklist from the stored template (or the bundled file) and export it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p = cfg.ApplyDefaults(p)

			tpl, err := services.LoadActiveTemplate(app, cfg.ResourceDir)
			if err != nil {
				return err
			}
			assessment, development, err := services.BuildTasklists(tpl, p, cfg.AssessmentShare)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, services.SanitizeFilename(services.DefaultExportFilename(p)))
			if err := services.ExportTasklist(assessment, development, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Excel exported successfully: %s\n", path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.ClientName, "client", "", "client (institution) name")
	f.StringVar(&p.IntegrationNumber, "intg-number", "", "integration number")
	f.StringVar(&p.IntegrationName, "intg-name", "", "integration name")
	f.StringVar(&p.ERPSystem, "erp", "", "ERP system")
	f.StringVar(&p.Directionality, "directionality", "", "Inbound, Outbound or Bi-Directional")
	f.Int64Var(&p.TotalHours, "hours", 0, "total hours to distribute")
	f.StringVar(&p.HoursSplit, "split", "", "Assessment, Development or Both")
	f.StringVar(&outDir, "out-dir", ".", "directory the workbook is written to")
	return cmd
}
