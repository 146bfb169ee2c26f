// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles the structured report document from a study
// selection. Building is deterministic: the same studies, title, and
// timestamp always produce the same document.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meshint/genspace/pkg/types"
)

// DefaultTitle is used when the caller supplies none.
const DefaultTitle = "Space Biology Research Analysis Report"

// ErrEmptySelection is returned by callers that refuse to build a
// report from zero studies. Build itself accepts an empty selection and
// falls back to the canonical findings.
var ErrEmptySelection = errors.New("no studies selected")

// canonicalFindings pad out the key findings when the selection yields
// fewer than four derived lines.
var canonicalFindings = []string{
	"Microgravity significantly affects cellular metabolism across multiple species",
	"Plant species show remarkable adaptation mechanisms to space radiation",
	"Bone density changes follow predictable patterns during extended missions",
	"Bacterial biofilm formation exhibits enhanced antibiotic resistance in space",
}

var canonicalRecommendations = []string{
	"Implement standardized protocols for metabolic studies in microgravity",
	"Develop targeted countermeasures for bone density preservation",
	"Investigate cross-species adaptation mechanisms for future applications",
	"Establish monitoring systems for bacterial behavior in space habitats",
}

var dataSources = []string{
	"NASA Life Sciences Data Archive",
	"European Space Agency Database",
	"International Space Station Research",
	"Commercial Space Research Data",
}

var analysisMethods = []string{
	"AI-powered pattern recognition",
	"Statistical correlation analysis",
	"Cross-species comparison",
	"Temporal trend analysis",
}

// Build assembles the report document for the given studies. An empty
// title falls back to DefaultTitle.
func Build(studies []types.Study, title string, generated time.Time, cfg types.ReportConfig) types.ReportDocument {
	if title == "" {
		title = DefaultTitle
	}
	n := len(studies)

	sections := []types.SectionKind{
		types.SectionExecutiveSummary,
		types.SectionKeyFindings,
	}
	if n > 0 {
		sections = append(sections, types.SectionSelectedStudies)
	}
	sections = append(sections,
		types.SectionStatistics,
		types.SectionMethodology,
		types.SectionRecommendations,
		types.SectionReferences,
	)

	refs := make([]types.StudyRef, n)
	for i, s := range studies {
		refs[i] = types.StudyRef{
			ID:      s.ID,
			Title:   s.Title,
			Mission: s.Mission,
			Species: s.Species,
			Year:    s.Year,
			Summary: s.Summary,
		}
	}

	return types.ReportDocument{
		Title:      title,
		Generated:  generated,
		StudyCount: n,
		Sections:   sections,
		ExecutiveSummary: fmt.Sprintf(
			"This comprehensive analysis examines %d space biology studies, "+
				"revealing critical insights into how various organisms respond to space environments. "+
				"The findings provide valuable data for future mission planning and biological research protocols.", n),
		KeyFindings: keyFindings(studies),
		Studies:     refs,
		Statistics: types.ReportStatistics{
			Confidence:      cfg.Confidence,
			Coverage:        cfg.Coverage,
			Reproducibility: cfg.Reproducibility,
		},
		Methodology: types.Methodology{
			DataSources:     dataSources,
			AnalysisMethods: analysisMethods,
		},
		Recommendations: canonicalRecommendations,
		References: types.ReferenceSummary{
			Journal:    n * 3 / 2,
			Database:   n,
			Conference: n / 2,
		},
	}
}

// keyFindings derives up to three lines from the selection's species,
// tissue, and mission attributes, then pads from the canonical findings
// to a total of four. Counts include duplicate attribute values; the
// listed names are distinct.
func keyFindings(studies []types.Study) []string {
	if len(studies) == 0 {
		return canonicalFindings
	}

	var species, tissues, missions []string
	for _, s := range studies {
		if s.Species != "" {
			species = append(species, s.Species)
		}
		if s.Tissue != "" {
			tissues = append(tissues, s.Tissue)
		}
		if s.Mission != "" {
			missions = append(missions, s.Mission)
		}
	}

	var findings []string
	if len(species) > 0 {
		findings = append(findings, fmt.Sprintf(
			"Study encompasses %d different species: %s",
			len(species), strings.Join(distinct(species), ", ")))
	}
	if len(tissues) > 0 {
		findings = append(findings, fmt.Sprintf(
			"Analysis covers %d tissue types with focus on %s",
			len(tissues), strings.Join(firstN(distinct(tissues), 3), ", ")))
	}
	if len(missions) > 0 {
		dm := distinct(missions)
		findings = append(findings, fmt.Sprintf(
			"Data collected from %d different missions including %s",
			len(dm), strings.Join(firstN(dm, 2), " and ")))
	}

	findings = append(findings, canonicalFindings[len(findings):]...)
	if len(findings) > 4 {
		findings = findings[:4]
	}
	return findings
}

// distinct keeps the first occurrence of each value, preserving order.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
