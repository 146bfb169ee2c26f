// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"

	"github.com/meshint/genspace/pkg/types"
)

// FilterCategory names one togglable filter chip. The predicates test
// for the attribute values the catalogue actually carries.
type FilterCategory string

const (
	FilterSpecies   FilterCategory = "Species"
	FilterTissue    FilterCategory = "Tissue"
	FilterMission   FilterCategory = "Mission"
	FilterOmicsType FilterCategory = "Omics Type"
	FilterDuration  FilterCategory = "Duration"
	FilterRadiation FilterCategory = "Radiation"
	FilterPathway   FilterCategory = "Pathway"
	FilterOutcome   FilterCategory = "Outcome"
	FilterYear      FilterCategory = "Year"
	FilterDataType  FilterCategory = "Data Type"
)

// Categories lists every filter category in display order.
func Categories() []FilterCategory {
	return []FilterCategory{
		FilterSpecies, FilterTissue, FilterMission, FilterOmicsType,
		FilterDuration, FilterRadiation, FilterPathway, FilterOutcome,
		FilterYear, FilterDataType,
	}
}

// FilterSet is the set of active filter categories. A study passes when
// it satisfies at least one active category; an empty set passes all.
type FilterSet map[FilterCategory]bool

// ParseFilterSet builds a filter set from category names, rejecting
// unknown ones.
func ParseFilterSet(names []string) (FilterSet, error) {
	known := make(map[FilterCategory]bool, 10)
	for _, c := range Categories() {
		known[c] = true
	}
	fs := make(FilterSet, len(names))
	for _, n := range names {
		c := FilterCategory(n)
		if !known[c] {
			return nil, fmt.Errorf("unknown filter category %q", n)
		}
		fs[c] = true
	}
	return fs, nil
}

// Match reports whether the study passes the filter set.
func (fs FilterSet) Match(study types.Study) bool {
	if len(fs) == 0 {
		return true
	}
	for c := range fs {
		if matchCategory(c, study) {
			return true
		}
	}
	return false
}

func matchCategory(c FilterCategory, study types.Study) bool {
	switch c {
	case FilterSpecies:
		s := strings.ToLower(study.Species)
		return strings.Contains(s, "human") || strings.Contains(s, "mouse") ||
			strings.Contains(s, "arabidopsis") || strings.Contains(s, "e. coli") ||
			strings.Contains(s, "pseudomonas")
	case FilterTissue:
		t := strings.ToLower(study.Tissue)
		return study.Tissue != "" && (strings.Contains(t, "root") ||
			strings.Contains(t, "bone") || strings.Contains(t, "muscle") ||
			strings.Contains(t, "cell") || strings.Contains(t, "biofilm") ||
			strings.Contains(t, "fibroblasts"))
	case FilterMission:
		m := strings.ToLower(study.Mission)
		return strings.Contains(m, "iss") || strings.Contains(m, "mars") ||
			strings.Contains(m, "spacex")
	case FilterOmicsType:
		o := strings.ToLower(study.OmicsType)
		return study.OmicsType != "" && (strings.Contains(o, "transcriptomics") ||
			strings.Contains(o, "proteomics") || strings.Contains(o, "genomics") ||
			strings.Contains(o, "metabolomics"))
	case FilterDuration:
		return study.Duration != "" && (strings.Contains(study.Duration, "days") ||
			strings.Contains(study.Duration, "day"))
	case FilterRadiation:
		r := strings.ToLower(study.Radiation)
		return study.Radiation != "" && (strings.Contains(r, "high") ||
			strings.Contains(r, "medium") || strings.Contains(r, "low") ||
			strings.Contains(r, "none"))
	case FilterPathway:
		// Compares against the first four characters of the category name.
		return study.Pathway != "" &&
			strings.Contains(strings.ToLower(study.Pathway), strings.ToLower(string(c))[:4])
	case FilterOutcome:
		// The non-empty guard binds only to the "changes" clause.
		o := strings.ToLower(study.Outcome)
		return (study.Outcome != "" && strings.Contains(o, "changes")) ||
			strings.Contains(o, "loss") || strings.Contains(o, "resistance") ||
			strings.Contains(o, "mutations")
	case FilterYear:
		return study.Year == "2023" || study.Year == "2022"
	case FilterDataType:
		d := strings.ToLower(study.DataType)
		return study.DataType != "" && (strings.Contains(d, "rna") ||
			strings.Contains(d, "mass") || strings.Contains(d, "dexa") ||
			strings.Contains(d, "genome"))
	}
	return false
}
