package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/beamcost/beamcost/internal/estimator"
)

// ExportExcel writes a batch of estimation results to an Excel workbook:
// one row per schema with its region count, cost breakdown and total, or
// the failure that prevented pricing.
func ExportExcel(path string, results []estimator.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quotes"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Schema", "Quote ID", "Regions", "Cut Cost", "Material Cost", "Total", "Error"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, res := range results {
		values := make([]any, len(headers))
		values[0] = res.Schema
		if res.Err != nil {
			values[6] = res.Err.Error()
		} else {
			values[1] = res.Quote.ID
			values[2] = len(res.Quote.Regions)
			values[3] = res.Quote.CutCost
			values[4] = res.Quote.MaterialCost
			values[5] = res.Quote.Total
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
