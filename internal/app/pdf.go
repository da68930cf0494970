package app

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/gradescrape/internal/scrape"
)

// writeRosterPDF renders the retained records as a printable roster,
// one line per student. The CSV remains the machine-readable artifact;
// this layout is intentionally minimal.
func writeRosterPDF(records []scrape.Record, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Student Roster", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "Student ID", "B", 0, "L", false, 0, "")
	pdf.CellFormat(70, 6, "Student Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "Course", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Year", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range records {
		pdf.CellFormat(30, 6, r.ID, "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, r.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, r.Course, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r.Year, "", 1, "L", false, 0, "")
	}
	return pdf.OutputFileAndClose(outPath)
}
