// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshint/genspace/internal/history"
	"github.com/meshint/genspace/internal/render"
	"github.com/meshint/genspace/internal/report"
	"github.com/meshint/genspace/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build an analysis report from selected studies",
	Long: `Report builds an analysis report from the selected catalogue studies
and renders it to one or more formats. Findings, methodology, and
references are derived from the selection; the rendered files land in
the output directory.

Use --save to record the rendered reports in the history database.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	rawIDs, _ := cmd.Flags().GetString("ids")
	ids := splitNonEmpty(rawIDs)

	appCfg := appConfig()
	cat, err := loadCatalog(appCfg.Search)
	if err != nil {
		return err
	}
	studies := cat.Subset(ids)
	if len(studies) == 0 {
		return report.ErrEmptySelection
	}

	rawFormats, _ := cmd.Flags().GetString("format")
	formats := splitNonEmpty(rawFormats)
	if len(formats) == 0 {
		formats = []string{string(render.FormatPDF)}
	}

	title, _ := cmd.Flags().GetString("title")
	cfg := reportConfig(cmd, appCfg)
	doc := report.Build(studies, title, time.Now(), cfg)

	var store *history.Store
	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err = history.NewStore(historyDBPath(cmd, appCfg))
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for _, f := range formats {
		out, err := render.Render(doc, render.Format(f))
		if err != nil {
			return err
		}

		path, err := render.WriteFile(out, cfg.OutputDir)
		if err != nil {
			return err
		}
		fmt.Println("Wrote", path)

		if store != nil {
			rec, err := store.Save(history.Record{
				Title:    doc.Title,
				Format:   f,
				StudyIDs: ids,
				Content:  out.Data,
			})
			if err != nil {
				return err
			}
			fmt.Println("Saved to history as", rec.ID)
		}
	}
	return nil
}

func reportConfig(cmd *cobra.Command, appCfg types.AppConfig) types.ReportConfig {
	cfg := appCfg.Report
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutputDir = out
	}
	return cfg
}

func historyDBPath(cmd *cobra.Command, appCfg types.AppConfig) string {
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		return db
	}
	return appCfg.History.DBPath
}

func splitNonEmpty(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	reportCmd.Flags().String("ids", "", "study IDs to include, comma-separated")
	reportCmd.Flags().String("title", "", "report title (default: Space Biology Research Analysis Report)")
	reportCmd.Flags().String("format", "pdf", "output formats, comma-separated: pdf, word, presentation, web")
	reportCmd.Flags().String("out", "", "output directory (default: reports)")
	reportCmd.Flags().Bool("save", false, "record rendered reports in the history database")
	reportCmd.Flags().String("db", "", "history database path (default: data/history.db)")

	rootCmd.AddCommand(reportCmd)
}
