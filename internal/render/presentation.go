// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/meshint/genspace/pkg/types"
)

// renderPresentation emits a slide deck as a single HTML page: a title
// slide with headline stats, then one slide per declared section.
func renderPresentation(doc types.ReportDocument) []byte {
	esc := template.HTMLEscapeString
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset='utf-8'>\n")
	b.WriteString("<title>" + esc(doc.Title) + "</title>\n")
	b.WriteString(`<style>
  body { font-family: Arial, sans-serif; margin: 0; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); }
  .slide { width: 100vw; height: 100vh; padding: 60px; box-sizing: border-box; page-break-after: always; }
  .slide-title { background: white; padding: 40px; text-align: center; }
  .slide-content { background: white; padding: 40px; margin-top: 20px; }
  h1 { color: #2563eb; font-size: 48px; margin: 0; }
  h2 { color: #1e40af; font-size: 36px; border-bottom: 3px solid #2563eb; }
  .key-stats { display: flex; justify-content: space-around; margin: 40px 0; }
  .stat { text-align: center; padding: 20px; background: #f8fafc; border-radius: 10px; }
  .stat-number { font-size: 48px; font-weight: bold; color: #2563eb; }
  .item { background: #f0f9ff; padding: 20px; margin: 10px 0; border-left: 4px solid #0ea5e9; font-size: 18px; }
</style>
</head>
<body>
`)

	speciesCount := 0
	missions := make(map[string]bool)
	for _, s := range doc.Studies {
		if s.Species != "" {
			speciesCount++
		}
		missions[s.Mission] = true
	}

	b.WriteString("<div class=\"slide\">\n<div class=\"slide-title\">\n")
	b.WriteString("<h1>" + esc(doc.Title) + "</h1>\n")
	b.WriteString("<p>Generated on " + esc(doc.DateString()) + "</p>\n")
	b.WriteString("<div class=\"key-stats\">\n")
	fmt.Fprintf(&b, "<div class=\"stat\"><div class=\"stat-number\">%d</div><div>Studies Analyzed</div></div>\n", doc.StudyCount)
	fmt.Fprintf(&b, "<div class=\"stat\"><div class=\"stat-number\">%d</div><div>Species Studied</div></div>\n", speciesCount)
	fmt.Fprintf(&b, "<div class=\"stat\"><div class=\"stat-number\">%d</div><div>Space Missions</div></div>\n", len(missions))
	b.WriteString("</div>\n</div>\n</div>\n")

	for _, section := range doc.Sections {
		b.WriteString("<div class=\"slide\">\n<div class=\"slide-content\">\n")
		b.WriteString("<h2>" + esc(types.SectionTitle(section)) + "</h2>\n")

		switch section {
		case types.SectionExecutiveSummary:
			b.WriteString("<p style=\"font-size: 20px; line-height: 1.8;\">" + esc(doc.ExecutiveSummary) + "</p>\n")
		case types.SectionKeyFindings:
			for _, f := range doc.KeyFindings {
				b.WriteString("<div class=\"item\">" + esc(f) + "</div>\n")
			}
		case types.SectionSelectedStudies:
			for _, s := range doc.Studies {
				fmt.Fprintf(&b, "<div class=\"item\"><strong>%s</strong><br>%s, %s</div>\n",
					esc(s.Title), esc(s.Mission), esc(s.Year))
			}
		case types.SectionStatistics:
			b.WriteString("<div class=\"key-stats\">\n")
			fmt.Fprintf(&b, "<div class=\"stat\"><div class=\"stat-number\">%d%%</div><div>Confidence Level</div></div>\n", doc.Statistics.Confidence)
			fmt.Fprintf(&b, "<div class=\"stat\"><div class=\"stat-number\">%d%%</div><div>Data Coverage</div></div>\n", doc.Statistics.Coverage)
			fmt.Fprintf(&b, "<div class=\"stat\"><div class=\"stat-number\">%d%%</div><div>Reproducibility</div></div>\n", doc.Statistics.Reproducibility)
			b.WriteString("</div>\n")
		case types.SectionMethodology:
			for _, d := range doc.Methodology.DataSources {
				b.WriteString("<div class=\"item\">" + esc(d) + "</div>\n")
			}
			for _, m := range doc.Methodology.AnalysisMethods {
				b.WriteString("<div class=\"item\">" + esc(m) + "</div>\n")
			}
		case types.SectionRecommendations:
			for i, r := range doc.Recommendations {
				fmt.Fprintf(&b, "<div class=\"item\">%d. %s</div>\n", i+1, esc(r))
			}
		case types.SectionReferences:
			fmt.Fprintf(&b, "<div class=\"item\">Journal publications: %d</div>\n", doc.References.Journal)
			fmt.Fprintf(&b, "<div class=\"item\">Database entries: %d</div>\n", doc.References.Database)
			fmt.Fprintf(&b, "<div class=\"item\">Conference proceedings: %d</div>\n", doc.References.Conference)
		}

		b.WriteString("</div>\n</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
