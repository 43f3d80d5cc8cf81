// Package excelimport turns supplier price-list workbooks into the
// excel_import_*.json snapshots the excel source adapter scans. Column
// meaning is inferred from the header row, since every supplier lays its
// sheet out differently.
package excelimport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// headerProbes maps logical columns to the header substrings that
// identify them, checked lower-cased. The sku entry comes first so a
// header like "Product SKU" binds to sku, not name.
var headerProbes = []struct {
	logical string
	probes  []string
}{
	{"sku", []string{"sku", "article", "item code", "part"}},
	{"name", []string{"name", "title", "product", "header"}},
	{"price", []string{"price", "retail", "msrp"}},
	{"cost", []string{"cost", "wholesale"}},
	{"stock", []string{"stock", "qty", "quantity", "inventory"}},
	{"description", []string{"description", "desc"}},
	{"manufacturer", []string{"manufacturer", "brand", "supplier"}},
}

type Summary struct {
	SourceFile  string `json:"source_file"`
	RowsScanned int    `json:"rows_scanned"`
	Products    int    `json:"products"`
	ImportedAt  string `json:"imported_at"`
	OutputPath  string `json:"-"`
}

// Import reads an xlsx price list and writes one snapshot into tempDir.
func Import(inputPath, tempDir string) (Summary, error) {
	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()

	processed := map[string]map[string]any{}
	rowsScanned := 0

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}

		columns := inferColumns(rows[0])
		if columns["sku"] < 0 {
			continue
		}

		for _, row := range rows[1:] {
			rowsScanned++
			sku := cell(row, columns["sku"])
			if sku == "" {
				continue
			}

			entry := map[string]any{}
			for logical, idx := range columns {
				if logical == "sku" || idx < 0 {
					continue
				}
				if value := cell(row, idx); value != "" {
					entry[logical] = value
				}
			}
			if len(entry) == 0 {
				continue
			}
			processed[sku] = entry
		}
	}

	summary := Summary{
		SourceFile:  filepath.Base(inputPath),
		RowsScanned: rowsScanned,
		Products:    len(processed),
		ImportedAt:  time.Now().Format(time.RFC3339),
	}

	outputPath, err := writeSnapshot(tempDir, processed, summary)
	if err != nil {
		return Summary{}, err
	}
	summary.OutputPath = outputPath
	return summary, nil
}

func writeSnapshot(tempDir string, processed map[string]map[string]any, summary Summary) (string, error) {
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", err
	}

	doc := map[string]any{
		"processed_data": processed,
		"summary":        summary,
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(tempDir, fmt.Sprintf("excel_import_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// inferColumns locates each logical column in the header row; -1 marks a
// column the sheet does not carry.
func inferColumns(header []string) map[string]int {
	out := map[string]int{}
	for _, entry := range headerProbes {
		out[entry.logical] = -1
	}

	for idx, raw := range header {
		cellText := strings.ToLower(strings.TrimSpace(raw))
		if cellText == "" {
			continue
		}
		for _, entry := range headerProbes {
			if out[entry.logical] >= 0 {
				continue
			}
			if matchesProbe(cellText, entry.probes) {
				out[entry.logical] = idx
				break
			}
		}
	}
	return out
}

func matchesProbe(cellText string, probes []string) bool {
	for _, probe := range probes {
		if strings.Contains(cellText, probe) {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
