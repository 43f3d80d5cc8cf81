// Package catalogue turns supplier catalogue documents (PDF price pages
// or HTML product tables) into the extracted_*.json snapshots the
// catalogue source adapter scans.
package catalogue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	pdf "github.com/ledongthuc/pdf"

	"skumerge/internal/util"
)

type Summary struct {
	SourceFile  string `json:"source_file"`
	InputType   string `json:"input_type"`
	Products    int    `json:"products"`
	ExtractedAt string `json:"extracted_at"`
	OutputPath  string `json:"-"`
}

// Extract parses the input document and writes one snapshot into tempDir.
// inputType selects the parser: "pdf" or "html".
func Extract(inputPath, inputType, tempDir string) (Summary, error) {
	var products map[string]map[string]any
	var err error

	switch inputType {
	case "pdf":
		products, err = parsePDF(inputPath)
	case "html":
		products, err = parseHTML(inputPath)
	default:
		return Summary{}, fmt.Errorf("unsupported input type: %s", inputType)
	}
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		SourceFile:  filepath.Base(inputPath),
		InputType:   inputType,
		Products:    len(products),
		ExtractedAt: time.Now().Format(time.RFC3339),
	}

	outputPath, err := writeSnapshot(tempDir, products, summary)
	if err != nil {
		return Summary{}, err
	}
	summary.OutputPath = outputPath
	return summary, nil
}

// parsePDF walks every page's plain text looking for price-list lines of
// the form "SKU Name ... price". Lines that don't fit are skipped.
func parsePDF(path string) (map[string]map[string]any, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	products := map[string]map[string]any{}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range splitLines(text) {
			sku, entry := parseLine(line)
			if sku == "" {
				continue
			}
			products[sku] = entry
		}
	}
	return products, nil
}

// parseHTML reads the first table with a recognizable header row.
func parseHTML(path string) (map[string]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	products := map[string]map[string]any{}
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}

		var headers []string
		rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
		})

		skuIdx := findHeader(headers, "sku", "article", "part")
		if skuIdx < 0 {
			return true
		}
		fieldIdx := map[string]int{
			"name":        findHeader(headers, "name", "title", "product"),
			"price":       findHeader(headers, "price", "msrp"),
			"brand":       findHeader(headers, "brand", "manufacturer"),
			"model":       findHeader(headers, "model"),
			"category":    findHeader(headers, "category", "type"),
			"description": findHeader(headers, "description"),
		}

		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})

			sku := pickCell(cells, skuIdx)
			if sku == "" {
				return
			}
			entry := map[string]any{}
			for field, idx := range fieldIdx {
				if value := pickCell(cells, idx); value != "" {
					entry[field] = value
				}
			}
			if len(entry) == 0 {
				return
			}
			products[sku] = entry
		})
		return false
	})

	return products, nil
}

// parseLine splits "SKU Name parts... price". The first token must look
// like a code and the last must parse as a number; everything between is
// the product name.
func parseLine(line string) (string, map[string]any) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return "", nil
	}

	sku := tokens[0]
	if !looksLikeSKU(sku) {
		return "", nil
	}
	price := util.ParseNumber(tokens[len(tokens)-1])
	if price == nil {
		return "", nil
	}

	name := strings.Join(tokens[1:len(tokens)-1], " ")
	return sku, map[string]any{
		"name":  name,
		"price": util.Stringify(*price),
	}
}

func looksLikeSKU(token string) bool {
	if len(token) < 3 || len(token) > 20 {
		return false
	}
	for _, r := range token {
		if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') && r != '-' && r != '_' {
			return false
		}
	}
	// Pure numbers are prices or quantities, not SKUs.
	for _, r := range token {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func writeSnapshot(tempDir string, products map[string]map[string]any, summary Summary) (string, error) {
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", err
	}

	doc := map[string]any{
		"products": products,
		"summary":  summary,
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(tempDir, fmt.Sprintf("extracted_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func findHeader(headers []string, probes ...string) int {
	for idx, header := range headers {
		for _, probe := range probes {
			if strings.Contains(header, probe) {
				return idx
			}
		}
	}
	return -1
}

func pickCell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
