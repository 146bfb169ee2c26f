// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []Result, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No studies found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-4s  %-52s  %-24s  %-4s  %s\n",
		"Rank", "ID", "Title", "Mission", "Year", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range results {
		title := r.Study.Title
		if len(title) > 52 {
			title = title[:49] + "..."
		}
		mission := r.Study.Mission
		if len(mission) > 24 {
			mission = mission[:21] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-4s  %-52s  %-24s  %-4s  %d\n",
			i+1, r.Study.ID, title, mission, r.Study.Year, r.Score)
	}

	fmt.Fprintf(w, "\n%d studies\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
