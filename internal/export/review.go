// Package export writes batch consolidation results to an xlsx workbook
// for the reviewing collaborator.
package export

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"skumerge/internal"
	"skumerge/internal/util"
)

func ReviewToXLSX(summary internal.BatchSummary, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"sku", "status", "error", "confidence", "completeness",
		"recommendation", "conflicts", "name", "price", "manufacturer",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, item := range summary.Items {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, item.SKU)
		set(2, item.Status)
		set(3, item.Error)
		set(4, item.Confidence)
		set(5, item.Completeness)
		set(6, string(item.Recommendation))
		set(7, item.Conflicts)
		if item.Record != nil {
			set(8, util.Stringify(item.Record.ConsolidatedData[internal.FieldName]))
			set(9, util.Stringify(item.Record.ConsolidatedData[internal.FieldPrice]))
			set(10, util.Stringify(item.Record.ConsolidatedData[internal.FieldManufacturer]))
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
