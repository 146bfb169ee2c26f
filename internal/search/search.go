// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search ranks catalogue studies against free-text queries with
// keyword synonym expansion, and applies the category filter predicates.
package search

import (
	"sort"
	"strings"

	"github.com/meshint/genspace/internal/catalog"
	"github.com/meshint/genspace/pkg/types"
)

// Relevance weights, highest rule wins per query term.
const (
	scoreTitle   = 100
	scoreField   = 50
	scoreSynonym = 30
	scorePrefix  = 10
)

// Result pairs a study with its summed relevance score.
type Result struct {
	Study types.Study `json:"study"`
	Score int         `json:"score"`
}

// Searcher ranks studies from a catalogue. It never errors: unmatched
// queries return an empty result set.
type Searcher struct {
	cat *catalog.Catalog
	syn Synonyms
}

// New builds a searcher over the given catalogue. A nil synonym table
// disables expansion.
func New(cat *catalog.Catalog, syn Synonyms) *Searcher {
	return &Searcher{cat: cat, syn: syn}
}

// Search scores every study against the query and keeps those with a
// positive score that also pass the filter set. Results are ordered by
// score descending; ties keep catalogue order. An empty query matches
// every study in catalogue order, subject only to the filters.
func (s *Searcher) Search(query string, filters FilterSet) []Result {
	terms := strings.Fields(strings.ToLower(query))

	var results []Result
	for _, study := range s.cat.All() {
		if !filters.Match(study) {
			continue
		}
		if len(terms) == 0 {
			results = append(results, Result{Study: study})
			continue
		}
		score := 0
		for _, term := range terms {
			score += s.termScore(term, study)
		}
		if score > 0 {
			results = append(results, Result{Study: study, Score: score})
		}
	}

	// Stable sort keeps catalogue order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// termScore applies the relevance rules in order and returns the first
// matching weight, or zero.
func (s *Searcher) termScore(term string, study types.Study) int {
	title := strings.ToLower(study.Title)
	fields := haystack(study)

	if strings.Contains(title, term) {
		return scoreTitle
	}
	if strings.Contains(fields, term) {
		return scoreField
	}
	if s.synonymMatch(term, fields) {
		return scoreSynonym
	}
	if prefixMatch(term, fields) {
		return scorePrefix
	}
	return 0
}

// haystack concatenates every searchable attribute of a study,
// lowercased, space-separated.
func haystack(study types.Study) string {
	parts := []string{
		study.Title,
		study.Summary,
		study.Mission,
		study.Species,
		study.Tissue,
		study.OmicsType,
		study.Duration,
		study.Radiation,
		study.Pathway,
		study.Outcome,
		study.DataType,
	}
	parts = append(parts, study.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// synonymMatch reports whether the term relates to a synonym key whose
// expansion appears in the study fields. The term and key must contain
// each other in one direction.
func (s *Searcher) synonymMatch(term, fields string) bool {
	for key, related := range s.syn {
		if !strings.Contains(term, key) && !strings.Contains(key, term) {
			continue
		}
		for _, r := range related {
			if strings.Contains(fields, strings.ToLower(r)) {
				return true
			}
		}
	}
	return false
}

// prefixMatch reports a weak match: some field word starts with the
// term, or the term starts with a field word's first three characters.
func prefixMatch(term, fields string) bool {
	for _, word := range strings.Fields(fields) {
		if strings.HasPrefix(word, term) {
			return true
		}
		if len(word) >= 3 && strings.HasPrefix(term, word[:3]) {
			return true
		}
	}
	return false
}
