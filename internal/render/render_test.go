// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/meshint/genspace/internal/catalog"
	"github.com/meshint/genspace/internal/report"
	"github.com/meshint/genspace/pkg/types"
)

func buildTestDoc(t *testing.T, ids ...string) types.ReportDocument {
	t.Helper()
	studies := catalog.Default().Subset(ids)
	generated := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	return report.Build(studies, "Orbit Biology Review", generated, types.DefaultReportConfig())
}

func parseHTML(t *testing.T, data []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parsing rendered HTML: %v", err)
	}
	return doc
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Space Biology Research Analysis Report", "space_biology_research_analysis_report"},
		{"Orbit Biology Review", "orbit_biology_review"},
		{"Report (v2), final!", "report_v2_final_"},
		{"already_slugged", "already_slugged"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderFilenamesAndContentTypes(t *testing.T) {
	doc := buildTestDoc(t, "1")

	tests := []struct {
		format       Format
		wantFilename string
		wantType     string
	}{
		{FormatPDF, "orbit_biology_review.pdf", "application/pdf"},
		{FormatWord, "orbit_biology_review.doc", "application/msword"},
		{FormatPresentation, "orbit_biology_review_presentation.html", "text/html; charset=utf-8"},
		{FormatWeb, "orbit_biology_review_web_report.html", "text/html; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			out, err := Render(doc, tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Filename != tt.wantFilename {
				t.Errorf("Filename = %q, want %q", out.Filename, tt.wantFilename)
			}
			if out.ContentType != tt.wantType {
				t.Errorf("ContentType = %q, want %q", out.ContentType, tt.wantType)
			}
			if len(out.Data) == 0 {
				t.Error("empty output")
			}
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(buildTestDoc(t), "markdown")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRenderPDFKeyFindingsOrder(t *testing.T) {
	doc := buildTestDoc(t)
	doc.Sections = []types.SectionKind{types.SectionKeyFindings}
	doc.KeyFindings = []string{"alpha finding", "beta finding", "gamma finding"}

	out, err := Render(doc, FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out.Data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}

	// Streams are uncompressed, so short single-line strings appear
	// literally in the content stream in draw order.
	positions := make([]int, 3)
	for i, f := range doc.KeyFindings {
		positions[i] = bytes.Index(out.Data, []byte(f))
		if positions[i] < 0 {
			t.Fatalf("finding %q missing from PDF", f)
		}
	}
	if !(positions[0] < positions[1] && positions[1] < positions[2]) {
		t.Errorf("findings out of order: %v", positions)
	}
}

func TestRenderWordStructure(t *testing.T) {
	out, err := Render(buildTestDoc(t, "1", "3"), FormatWord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := parseHTML(t, out.Data)

	if got := q.Find("h1").Text(); got != "Orbit Biology Review" {
		t.Errorf("h1 = %q", got)
	}
	if n := q.Find("div.finding").Length(); n != 4 {
		t.Errorf("finding divs = %d, want 4", n)
	}
	studies := q.Find("div.study-list strong")
	if studies.Length() != 2 {
		t.Errorf("study entries = %d, want 2", studies.Length())
	}
}

func TestRenderSectionsMatchDeclaration(t *testing.T) {
	// A document that declares only two sections must render exactly
	// those, in order, regardless of what content it carries.
	doc := buildTestDoc(t, "1", "2")
	doc.Sections = []types.SectionKind{
		types.SectionKeyFindings,
		types.SectionReferences,
	}

	for _, format := range []Format{FormatWord, FormatPresentation, FormatWeb} {
		t.Run(string(format), func(t *testing.T) {
			out, err := Render(doc, format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			q := parseHTML(t, out.Data)

			var headings []string
			q.Find("h2").Each(func(_ int, s *goquery.Selection) {
				headings = append(headings, strings.TrimSpace(s.Text()))
			})
			want := []string{"Key Findings", "References"}
			if len(headings) != len(want) {
				t.Fatalf("headings = %v, want %v", headings, want)
			}
			for i := range want {
				if headings[i] != want[i] {
					t.Errorf("headings = %v, want %v", headings, want)
					break
				}
			}
		})
	}
}

func TestRenderPresentationSlides(t *testing.T) {
	doc := buildTestDoc(t, "1", "3", "5")
	out, err := Render(doc, FormatPresentation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := parseHTML(t, out.Data)

	// Title slide plus one slide per section.
	wantSlides := 1 + len(doc.Sections)
	if n := q.Find("div.slide").Length(); n != wantSlides {
		t.Errorf("slides = %d, want %d", n, wantSlides)
	}
	stats := q.Find("div.slide-title .stat-number")
	if stats.Length() != 3 {
		t.Fatalf("title-slide stats = %d, want 3", stats.Length())
	}
	// 3 studies, 3 species values, 3 distinct missions.
	wantStats := []string{"3", "3", "3"}
	stats.Each(func(i int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != wantStats[i] {
			t.Errorf("stat %d = %q, want %q", i, s.Text(), wantStats[i])
		}
	})
}

func TestRenderWebStatsStrip(t *testing.T) {
	// Studies 3 and 5 share the species value and have distinct missions.
	out, err := Render(buildTestDoc(t, "3", "5"), FormatWeb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := parseHTML(t, out.Data)

	stats := q.Find("div.stats").First().Find(".stat-number")
	want := []string{"2", "2", "2"}
	if stats.Length() != 3 {
		t.Fatalf("stat cards = %d, want 3", stats.Length())
	}
	stats.Each(func(i int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != want[i] {
			t.Errorf("stat %d = %q, want %q", i, s.Text(), want[i])
		}
	})

	if q.Find("header h1").Length() != 1 {
		t.Error("missing header band")
	}
	if q.Find("div.study-card").Length() != 2 {
		t.Errorf("study cards = %d, want 2", q.Find("div.study-card").Length())
	}
}

func TestWriteFile(t *testing.T) {
	out, err := Render(buildTestDoc(t, "1"), FormatWeb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir := t.TempDir() + "/reports"
	path, err := WriteFile(out, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, out.Data) {
		t.Error("written bytes differ from rendered output")
	}
}
