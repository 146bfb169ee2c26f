// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SectionKind identifies one top-level report section. The builder emits
// sections in a fixed order; renderers reproduce exactly the sections a
// document declares, in the declared order.
type SectionKind string

const (
	SectionExecutiveSummary SectionKind = "executive_summary"
	SectionKeyFindings      SectionKind = "key_findings"
	SectionSelectedStudies  SectionKind = "selected_studies"
	SectionStatistics       SectionKind = "statistical_analysis"
	SectionMethodology      SectionKind = "methodology"
	SectionRecommendations  SectionKind = "recommendations"
	SectionReferences       SectionKind = "references"
)

// SectionTitle returns the display heading for a section.
func SectionTitle(s SectionKind) string {
	switch s {
	case SectionExecutiveSummary:
		return "Executive Summary"
	case SectionKeyFindings:
		return "Key Findings"
	case SectionSelectedStudies:
		return "Selected Studies"
	case SectionStatistics:
		return "Statistical Analysis"
	case SectionMethodology:
		return "Methodology"
	case SectionRecommendations:
		return "Recommendations"
	case SectionReferences:
		return "References"
	}
	return string(s)
}

// StudyRef is the subset of a study record carried into a report.
type StudyRef struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Mission string `json:"mission" yaml:"mission"`
	Species string `json:"species,omitempty" yaml:"species,omitempty"`
	Year    string `json:"year" yaml:"year"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ReportStatistics holds the three headline metrics shown in every
// report. The values are configuration-supplied defaults, not derived
// from the selection.
type ReportStatistics struct {
	Confidence      int `json:"confidence" yaml:"confidence"`
	Coverage        int `json:"coverage" yaml:"coverage"`
	Reproducibility int `json:"reproducibility" yaml:"reproducibility"`
}

// Methodology holds the two fixed methodology sub-blocks.
type Methodology struct {
	DataSources     []string `json:"data_sources" yaml:"data_sources"`
	AnalysisMethods []string `json:"analysis_methods" yaml:"analysis_methods"`
}

// ReferenceSummary counts citations by venue class, derived from the
// selection size.
type ReferenceSummary struct {
	Journal    int `json:"journal" yaml:"journal"`
	Database   int `json:"database" yaml:"database"`
	Conference int `json:"conference" yaml:"conference"`
}

// ReportDocument is the pre-render representation of a report,
// independent of output format. Leaves carry only strings and numbers;
// presentation is the renderer's concern.
type ReportDocument struct {
	Title      string    `json:"title" yaml:"title"`
	Generated  time.Time `json:"generated" yaml:"generated"`
	StudyCount int       `json:"study_count" yaml:"study_count"`

	// Sections lists the included sections in render order.
	Sections []SectionKind `json:"sections" yaml:"sections"`

	ExecutiveSummary string           `json:"executive_summary" yaml:"executive_summary"`
	KeyFindings      []string         `json:"key_findings" yaml:"key_findings"`
	Studies          []StudyRef       `json:"studies" yaml:"studies"`
	Statistics       ReportStatistics `json:"statistics" yaml:"statistics"`
	Methodology      Methodology      `json:"methodology" yaml:"methodology"`
	Recommendations  []string         `json:"recommendations" yaml:"recommendations"`
	References       ReferenceSummary `json:"references" yaml:"references"`
}

// DateString formats the generation date for display.
func (d *ReportDocument) DateString() string {
	return d.Generated.Format("January 2, 2006")
}
