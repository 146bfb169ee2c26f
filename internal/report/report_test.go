// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/meshint/genspace/internal/catalog"
	"github.com/meshint/genspace/pkg/types"
)

var testTime = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestBuildFindingsComposition(t *testing.T) {
	studies := catalog.Default().Subset([]string{"1", "3"})

	doc := Build(studies, "", testTime, types.DefaultReportConfig())

	if !strings.HasPrefix(doc.KeyFindings[0], "Study encompasses 2 different species:") {
		t.Errorf("KeyFindings[0] = %q", doc.KeyFindings[0])
	}
	if !strings.Contains(doc.KeyFindings[0], "Arabidopsis, Human") {
		t.Errorf("KeyFindings[0] = %q, want distinct species in selection order", doc.KeyFindings[0])
	}
	if !strings.HasPrefix(doc.KeyFindings[1], "Analysis covers 2 tissue types") {
		t.Errorf("KeyFindings[1] = %q", doc.KeyFindings[1])
	}
	want2 := "Data collected from 2 different missions including ISS Expedition 68 and ISS Year-Long Mission"
	if doc.KeyFindings[2] != want2 {
		t.Errorf("KeyFindings[2] = %q, want %q", doc.KeyFindings[2], want2)
	}
	// Three derived lines leave room for exactly one canonical finding.
	if len(doc.KeyFindings) != 4 {
		t.Fatalf("len(KeyFindings) = %d, want 4", len(doc.KeyFindings))
	}
	if doc.KeyFindings[3] != canonicalFindings[3] {
		t.Errorf("KeyFindings[3] = %q, want canonical pad %q", doc.KeyFindings[3], canonicalFindings[3])
	}
}

func TestBuildFindingsCountDuplicateSpecies(t *testing.T) {
	// Studies 3 and 5 are both Human: count stays 2, the listed names
	// collapse to one.
	studies := catalog.Default().Subset([]string{"3", "5"})
	doc := Build(studies, "", testTime, types.DefaultReportConfig())

	want := "Study encompasses 2 different species: Human"
	if doc.KeyFindings[0] != want {
		t.Errorf("KeyFindings[0] = %q, want %q", doc.KeyFindings[0], want)
	}
}

func TestBuildEmptySelectionUsesCanonicalFindings(t *testing.T) {
	doc := Build(nil, "", testTime, types.DefaultReportConfig())

	if !reflect.DeepEqual(doc.KeyFindings, canonicalFindings) {
		t.Errorf("KeyFindings = %v", doc.KeyFindings)
	}
	if doc.StudyCount != 0 {
		t.Errorf("StudyCount = %d, want 0", doc.StudyCount)
	}
	for _, s := range doc.Sections {
		if s == types.SectionSelectedStudies {
			t.Error("empty selection must not declare a selected-studies section")
		}
	}
}

func TestBuildDocumentShape(t *testing.T) {
	studies := catalog.Default().All()
	doc := Build(studies, "Mission Readiness Review", testTime, types.DefaultReportConfig())

	if doc.Title != "Mission Readiness Review" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.StudyCount != 6 {
		t.Errorf("StudyCount = %d, want 6", doc.StudyCount)
	}
	if doc.DateString() != "March 14, 2026" {
		t.Errorf("DateString() = %q", doc.DateString())
	}

	wantSections := []types.SectionKind{
		types.SectionExecutiveSummary,
		types.SectionKeyFindings,
		types.SectionSelectedStudies,
		types.SectionStatistics,
		types.SectionMethodology,
		types.SectionRecommendations,
		types.SectionReferences,
	}
	if !reflect.DeepEqual(doc.Sections, wantSections) {
		t.Errorf("Sections = %v", doc.Sections)
	}

	if len(doc.Studies) != 6 || doc.Studies[0].Title != studies[0].Title {
		t.Errorf("Studies = %+v", doc.Studies)
	}
	if !strings.Contains(doc.ExecutiveSummary, "examines 6 space biology studies") {
		t.Errorf("ExecutiveSummary = %q", doc.ExecutiveSummary)
	}
	if doc.Statistics != (types.ReportStatistics{Confidence: 94, Coverage: 87, Reproducibility: 91}) {
		t.Errorf("Statistics = %+v", doc.Statistics)
	}
	if len(doc.Methodology.DataSources) != 4 || len(doc.Methodology.AnalysisMethods) != 4 {
		t.Errorf("Methodology = %+v", doc.Methodology)
	}
	if !reflect.DeepEqual(doc.Recommendations, canonicalRecommendations) {
		t.Errorf("Recommendations = %v", doc.Recommendations)
	}
}

func TestBuildReferenceSummary(t *testing.T) {
	tests := []struct {
		n    int
		want types.ReferenceSummary
	}{
		{0, types.ReferenceSummary{Journal: 0, Database: 0, Conference: 0}},
		{1, types.ReferenceSummary{Journal: 1, Database: 1, Conference: 0}},
		{3, types.ReferenceSummary{Journal: 4, Database: 3, Conference: 1}},
		{6, types.ReferenceSummary{Journal: 9, Database: 6, Conference: 3}},
	}
	all := catalog.Default().All()

	for _, tt := range tests {
		doc := Build(all[:tt.n], "", testTime, types.DefaultReportConfig())
		if doc.References != tt.want {
			t.Errorf("n=%d: References = %+v, want %+v", tt.n, doc.References, tt.want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	studies := catalog.Default().Subset([]string{"2", "4", "6"})
	a := Build(studies, "Repeatability", testTime, types.DefaultReportConfig())
	b := Build(studies, "Repeatability", testTime, types.DefaultReportConfig())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different documents")
	}
}
