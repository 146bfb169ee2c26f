// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshint/genspace/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the study catalogue",
	Long: `Search ranks catalogue studies against a free-text query. Title matches
score highest, then field matches, synonym matches, and prefix matches.
An empty query lists the whole catalogue. Category filters narrow the
candidates before scoring.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	var names []string
	if raw, _ := cmd.Flags().GetString("filters"); raw != "" {
		names = strings.Split(raw, ",")
	}
	filters, err := search.ParseFilterSet(names)
	if err != nil {
		return err
	}

	cfg := appConfig()
	cat, err := loadCatalog(cfg.Search)
	if err != nil {
		return err
	}
	syn, err := loadSynonyms(cfg.Search)
	if err != nil {
		return err
	}

	results := search.New(cat, syn).Search(query, filters)

	max, _ := cmd.Flags().GetInt("max-results")
	if max <= 0 {
		max = cfg.Search.MaxResults
	}
	if max > 0 && len(results) > max {
		results = results[:max]
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(results, os.Stdout)
	}
	search.FormatTable(results, os.Stdout)
	return nil
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the available filter categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range search.Categories() {
			fmt.Println(c)
		}
	},
}

func init() {
	searchCmd.Flags().String("filters", "", "filter categories, comma-separated (see 'genspace filters')")
	searchCmd.Flags().Int("max-results", 0, "maximum results to print (0 = all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filtersCmd)
}
