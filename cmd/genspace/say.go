// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshint/genspace/internal/intent"
	"github.com/meshint/genspace/internal/search"
	"github.com/meshint/genspace/internal/voice"
)

var sayCmd = &cobra.Command{
	Use:   "say <utterance>",
	Short: "Recognise a spoken command and dispatch it",
	Long: `Say runs one utterance through the voice command loop: the intent is
recognised, dispatched when confident enough, and acknowledged the way
the voice assistant would speak it. Navigation intents print the
destination; search intents run the search against the catalogue.

Use --dry-run to print the recognised intent as JSON without
dispatching it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

// printSpeaker voices acknowledgements to stdout.
type printSpeaker struct{}

func (printSpeaker) Speak(text string) { fmt.Println(text) }

// cliActions dispatches recognised intents to terminal output. Search
// intents run against the catalogue so the command is useful on its own.
type cliActions struct {
	searcher *search.Searcher
}

func (a *cliActions) Navigate(dest intent.Destination) {
	fmt.Printf("-> %s\n", dest)
}

func (a *cliActions) Search(query string) {
	search.FormatTable(a.searcher.Search(query, nil), os.Stdout)
}

func (a *cliActions) OpenReports() {
	fmt.Println("-> reports (use 'genspace report --ids ...' to generate one)")
}

func runSay(cmd *cobra.Command, args []string) error {
	utterance := strings.Join(args, " ")

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(intent.Recognise(utterance))
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

	session := voice.NewSession(nil, printSpeaker{}, &cliActions{searcher: search.New(cat, syn)})
	in := session.Handle(utterance)

	if in.Kind == intent.KindUnrecognised && len(in.Suggestions) > 0 {
		fmt.Println("Did you mean:")
		for _, s := range in.Suggestions {
			fmt.Printf("  %s\n", s)
		}
	}
	return nil
}

func init() {
	sayCmd.Flags().Bool("dry-run", false, "print the recognised intent as JSON without dispatching")

	rootCmd.AddCommand(sayCmd)
}
