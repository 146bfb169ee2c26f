// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshint/genspace/internal/history"
	"github.com/meshint/genspace/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage previously generated reports",
	Long: `History lists, re-exports, and deletes reports saved with
'genspace report --save'. Reports are stored in a local SQLite
database together with their rendered bytes.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No saved reports.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-40s  %-12s  %-20s  %s\n",
		"ID", "Title", "Format", "Created", "Studies")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))
	for _, rec := range records {
		title := rec.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-40s  %-12s  %-20s  %s\n",
			rec.ID, title, rec.Format,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			strings.Join(rec.StudyIDs, ","))
	}
	fmt.Fprintf(os.Stdout, "\n%d reports\n", len(records))
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-export a saved report to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(args[0])
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	out := render.Output{
		Data:     rec.Content,
		Filename: render.Slug(rec.Title) + "_" + rec.Format + exportExt(rec.Format),
	}
	path, err := render.WriteFile(out, outDir)
	if err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted", args[0])
	return nil
}

func openHistory(cmd *cobra.Command) (*history.Store, error) {
	return history.NewStore(historyDBPath(cmd, appConfig()))
}

func exportExt(format string) string {
	if render.Format(format) == render.FormatPDF {
		return ".pdf"
	}
	if render.Format(format) == render.FormatWord {
		return ".doc"
	}
	return ".html"
}

func init() {
	historyCmd.PersistentFlags().String("db", "", "history database path (default: data/history.db)")
	historyShowCmd.Flags().String("out", "reports", "directory for the re-exported file")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)

	rootCmd.AddCommand(historyCmd)
}
