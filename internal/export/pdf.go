// Package export renders batch estimation results to shareable formats:
// a printable quote document, a spreadsheet, and QR-coded job labels.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/beamcost/beamcost/internal/estimator"
	"github.com/beamcost/beamcost/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
)

// ExportPDF generates a quote document for a batch of estimation
// results: one breakdown block per schema, then the pricing constants
// the batch was run with.
func ExportPDF(path string, results []estimator.Result, cfg model.CostConfig) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Laser Cutting Quote", "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)
	pdf.SetY(marginTop + 16)

	for _, res := range results {
		renderResultBlock(pdf, res)
	}

	renderConfigBlock(pdf, cfg)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by BeamCost", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderResultBlock draws one schema's quote, or its failure, as a block
// at the current Y position.
func renderResultBlock(pdf *fpdf.Fpdf, res estimator.Result) {
	y := pdf.GetY() + 4

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, res.Schema, "", 1, "L", false, 0, "")

	if res.Err != nil {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetX(marginLeft + 5)
		pdf.CellFormat(pageWidth-marginLeft-marginRight-5, 5, fmt.Sprintf("not priced: %v", res.Err), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		return
	}

	q := res.Quote

	// Region table: one row per closed profile.
	colWidths := []float64{20, 45, 45, 45}
	headers := []string{"Region", "Width", "Height", "Stock area"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft + 5
	for i, h := range headers {
		pdf.SetXY(x, pdf.GetY())
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	for i, r := range q.Regions {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.3f", r.Width),
			fmt.Sprintf("%.3f", r.Height),
			fmt.Sprintf("%.4f", r.Area),
		}
		x = marginLeft + 5
		for j, cell := range row {
			pdf.SetXY(x, pdf.GetY())
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			x += colWidths[j]
		}
		pdf.Ln(6)
	}

	// Cost lines
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []struct {
		label string
		value string
	}{
		{"Cutting", fmt.Sprintf("$%.2f", q.CutCost)},
		{"Material", fmt.Sprintf("$%.2f", q.MaterialCost)},
	} {
		pdf.SetX(marginLeft + 5)
		pdf.CellFormat(40, 5, line.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, line.value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(marginLeft + 5)
	pdf.CellFormat(40, 5, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 5, q.FormatPrice(), "", 1, "R", false, 0, "")
}

// renderConfigBlock lists the pricing constants used for the batch.
func renderConfigBlock(pdf *fpdf.Fpdf, cfg model.CostConfig) {
	y := pdf.GetY() + 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pricing Constants", "", 1, "L", false, 0, "")

	items := []struct {
		label string
		value string
	}{
		{"Material cost per area", fmt.Sprintf("%.4f", cfg.MaterialCostPerArea)},
		{"Nominal laser speed", fmt.Sprintf("%.4f", cfg.NominalLaserSpeed)},
		{"Time unit cost", fmt.Sprintf("%.4f", cfg.TimeUnitCost)},
		{"Padding margin", fmt.Sprintf("%.4f", cfg.PaddingMargin)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		pdf.SetX(marginLeft + 5)
		pdf.CellFormat(55, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 1, "L", false, 0, "")
	}
}
