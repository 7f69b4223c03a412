package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/beamcost/beamcost/internal/estimator"
)

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded job labels, one per priced
// schema. Each label carries the quote id, schema name and total, plus a
// QR code encoding the full quote as JSON. Failed schemas get no label.
func ExportLabels(path string, results []estimator.Result) error {
	var priced []estimator.Result
	for _, res := range results {
		if res.Err == nil {
			priced = append(priced, res)
		}
	}
	if len(priced) == 0 {
		return fmt.Errorf("no priced schemas to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, res := range priced {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, res); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", res.Schema, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single job label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, res estimator.Result) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(res.Quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", res.Quote.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Schema name (bold, truncated to fit)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	name := res.Schema
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	// Total price
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, res.Quote.FormatPrice(), "", 1, "L", false, 0, "")

	// Quote id and region count
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	info := fmt.Sprintf("Quote %s | %d region(s)", res.Quote.ID, len(res.Quote.Regions))
	pdf.CellFormat(textW, 3, info, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
