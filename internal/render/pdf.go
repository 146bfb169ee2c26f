// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/meshint/genspace/pkg/types"
)

const (
	pdfMargin     = 20.0
	pdfLineHeight = 7.0
)

func renderPDF(doc types.ReportDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Uncompressed streams keep the document text inspectable.
	pdf.SetCompression(false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.MultiCell(0, pdfLineHeight+3, doc.Title, "", "L", false)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, pdfLineHeight, "Generated on "+doc.DateString(), "", "L", false)
	pdf.MultiCell(0, pdfLineHeight, fmt.Sprintf("%d studies analyzed", doc.StudyCount), "", "L", false)
	pdf.Ln(pdfLineHeight)

	for _, section := range doc.Sections {
		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(0, pdfLineHeight+1, types.SectionTitle(section), "", "L", false)
		pdf.SetFont("Arial", "", 11)

		switch section {
		case types.SectionExecutiveSummary:
			pdfParagraph(pdf, doc.ExecutiveSummary)
		case types.SectionKeyFindings:
			for _, f := range doc.KeyFindings {
				pdfParagraph(pdf, "- "+f)
			}
		case types.SectionSelectedStudies:
			for _, s := range doc.Studies {
				pdf.SetFont("Arial", "B", 11)
				pdfParagraph(pdf, s.Title)
				pdf.SetFont("Arial", "", 11)
				pdfParagraph(pdf, fmt.Sprintf("Mission: %s | Species: %s | Year: %s", s.Mission, s.Species, s.Year))
				if s.Summary != "" {
					pdfParagraph(pdf, s.Summary)
				}
			}
		case types.SectionStatistics:
			pdfParagraph(pdf, fmt.Sprintf("Confidence Level: %d%%", doc.Statistics.Confidence))
			pdfParagraph(pdf, fmt.Sprintf("Data Coverage: %d%%", doc.Statistics.Coverage))
			pdfParagraph(pdf, fmt.Sprintf("Reproducibility: %d%%", doc.Statistics.Reproducibility))
		case types.SectionMethodology:
			pdfParagraph(pdf, "Data Sources:")
			for _, d := range doc.Methodology.DataSources {
				pdfParagraph(pdf, "- "+d)
			}
			pdfParagraph(pdf, "Analysis Methods:")
			for _, m := range doc.Methodology.AnalysisMethods {
				pdfParagraph(pdf, "- "+m)
			}
		case types.SectionRecommendations:
			for i, r := range doc.Recommendations {
				pdfParagraph(pdf, fmt.Sprintf("%d. %s", i+1, r))
			}
		case types.SectionReferences:
			pdfParagraph(pdf, fmt.Sprintf("Complete bibliography with %d citations from peer-reviewed sources", doc.StudyCount*2))
			pdfParagraph(pdf, fmt.Sprintf("Journal publications: %d", doc.References.Journal))
			pdfParagraph(pdf, fmt.Sprintf("Database entries: %d", doc.References.Database))
			pdfParagraph(pdf, fmt.Sprintf("Conference proceedings: %d", doc.References.Conference))
		}
		pdf.Ln(pdfLineHeight / 2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfParagraph(pdf *fpdf.Fpdf, text string) {
	pdf.MultiCell(0, pdfLineHeight, text, "", "L", false)
}
