// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/meshint/genspace/pkg/types"
)

// renderWord emits the office-flavoured HTML that word processors open
// as a native document. The byte-order mark keeps legacy importers from
// misreading the charset.
func renderWord(doc types.ReportDocument) []byte {
	esc := template.HTMLEscapeString
	var b strings.Builder

	b.WriteString("\uFEFF")
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word'>\n")
	b.WriteString("<head>\n<meta charset='utf-8'>\n<title>" + esc(doc.Title) + "</title>\n")
	b.WriteString(`<style>
  body { font-family: Arial, sans-serif; margin: 40px; }
  h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
  h2 { color: #1e40af; margin-top: 30px; }
  .metadata { background: #f8fafc; padding: 15px; border-left: 4px solid #2563eb; margin: 20px 0; }
  .study-list { background: #f1f5f9; padding: 15px; margin: 10px 0; }
  .finding { margin: 10px 0; padding: 10px; background: #f8fafc; border-left: 3px solid #10b981; }
</style>
</head>
<body>
`)
	b.WriteString("<h1>" + esc(doc.Title) + "</h1>\n")
	b.WriteString("<div class=\"metadata\">\n")
	b.WriteString("<p><strong>Generated:</strong> " + esc(doc.DateString()) + "</p>\n")
	fmt.Fprintf(&b, "<p><strong>Studies Analyzed:</strong> %d</p>\n", doc.StudyCount)
	b.WriteString("</div>\n")

	for _, section := range doc.Sections {
		b.WriteString("<h2>" + esc(types.SectionTitle(section)) + "</h2>\n")

		switch section {
		case types.SectionExecutiveSummary:
			b.WriteString("<p>" + esc(doc.ExecutiveSummary) + "</p>\n")
		case types.SectionKeyFindings:
			for _, f := range doc.KeyFindings {
				b.WriteString("<div class=\"finding\">" + esc(f) + "</div>\n")
			}
		case types.SectionSelectedStudies:
			b.WriteString("<div class=\"study-list\">\n")
			for _, s := range doc.Studies {
				fmt.Fprintf(&b, "<p><strong>%s</strong> (%s)</p>\n", esc(s.Title), esc(s.Year))
				b.WriteString("<p><em>Mission:</em> " + esc(s.Mission) + "</p>\n")
				if s.Summary != "" {
					b.WriteString("<p>" + esc(s.Summary) + "</p>\n")
				}
				b.WriteString("<hr>\n")
			}
			b.WriteString("</div>\n")
		case types.SectionStatistics:
			fmt.Fprintf(&b, "<p>Confidence Level: %d%%</p>\n", doc.Statistics.Confidence)
			fmt.Fprintf(&b, "<p>Data Coverage: %d%%</p>\n", doc.Statistics.Coverage)
			fmt.Fprintf(&b, "<p>Reproducibility: %d%%</p>\n", doc.Statistics.Reproducibility)
		case types.SectionMethodology:
			b.WriteString("<p>Data was collected from " + esc(joinAnd(doc.Methodology.DataSources)) + ".")
			b.WriteString(" Analysis utilized " + esc(joinAnd(doc.Methodology.AnalysisMethods)) + ".</p>\n")
		case types.SectionRecommendations:
			for i, r := range doc.Recommendations {
				fmt.Fprintf(&b, "<p>%d. %s</p>\n", i+1, esc(r))
			}
		case types.SectionReferences:
			fmt.Fprintf(&b, "<p>Complete bibliography with %d citations from peer-reviewed sources</p>\n", doc.StudyCount*2)
			fmt.Fprintf(&b, "<p>Journal publications: %d</p>\n", doc.References.Journal)
			fmt.Fprintf(&b, "<p>Database entries: %d</p>\n", doc.References.Database)
			fmt.Fprintf(&b, "<p>Conference proceedings: %d</p>\n", doc.References.Conference)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

// joinAnd joins items with commas and a final "and".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
