// Package locator finds a product's rows in a fragmented SQLite database
// whose layout varies per deployment. It scans a fixed candidate table
// list, probing each table's schema before querying it.
package locator

import (
	"database/sql"
	"fmt"

	"skumerge/internal"
	"skumerge/internal/schema"
	"skumerge/internal/util"
)

// candidateTables is the fixed scan order. Merge behavior depends on it:
// rows from later tables overwrite earlier ones per column.
var candidateTables = []string{
	"articles",
	"products",
	"product_data",
	"snowmobile_products",
	"items",
	"catalogue_data",
	"product_info",
}

// importantFields drive the locator-level completeness ratio.
var importantFields = []string{"name", "price", "description", "manufacturer", "specifications"}

// FindProduct scans every candidate table for rows matching sku and merges
// them into one flat record. A failure in one table is printed and skipped;
// the scan always covers the remaining tables.
func FindProduct(conn *sql.DB, sku string) internal.LocatorResult {
	merged := map[string]any{}
	var sourceTables []string

	for _, table := range candidateTables {
		info := schema.Probe(conn, table)
		if !info.Exists || info.SKUColumn == nil {
			continue
		}

		rows, err := queryRows(conn, table, *info.SKUColumn, info.Columns, sku)
		if err != nil {
			fmt.Printf("locator: table %s query failed, skipping: %v\n", table, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		sourceTables = append(sourceTables, table)
		for _, row := range rows {
			for col, val := range row {
				if util.IsEmpty(val) {
					continue
				}
				merged[col] = val
			}
		}
	}

	return internal.LocatorResult{
		Found:        len(merged) > 0,
		Record:       merged,
		Completeness: completeness(merged),
		SourceTables: sourceTables,
	}
}

func queryRows(conn *sql.DB, table, skuColumn string, columns []string, sku string) ([]map[string]any, error) {
	// Table and column names come from the probed catalog, not user input,
	// but they still cannot be bound as parameters.
	query := fmt.Sprintf(`SELECT * FROM %q WHERE %q = ?`, table, skuColumn)
	rows, err := conn.Query(query, sku)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = normalizeValue(values[i])
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// normalizeValue keeps row values JSON-friendly; BLOB columns arrive from
// the driver as []byte.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func completeness(record map[string]any) float64 {
	filled := 0
	for _, field := range importantFields {
		if !util.IsEmpty(record[field]) {
			filled++
		}
	}
	return float64(filled) / float64(len(importantFields))
}
