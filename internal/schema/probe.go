// Package schema discovers how an externally owned SQLite database lays
// out its product data. Table and column names are not under our control,
// so everything here is best-effort: a failed query reads as "table does
// not exist" and never aborts the caller's scan.
package schema

import (
	"database/sql"
	"strings"
)

// skuColumnPatterns are checked in priority order; the first column whose
// lower-cased name contains a pattern wins.
var skuColumnPatterns = []string{"sku", "article", "part", "model", "product_id", "item_code"}

// TableInfo is the result of probing one candidate table.
type TableInfo struct {
	Exists    bool
	Columns   []string
	SKUColumn *string
}

// Probe reports whether table exists, its columns in declaration order,
// and the column that most likely carries the SKU. No error is returned:
// any failure is treated as the table not existing.
func Probe(conn *sql.DB, table string) TableInfo {
	if conn == nil {
		return TableInfo{}
	}

	var name string
	err := conn.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
	).Scan(&name)
	if err != nil {
		return TableInfo{}
	}

	columns, err := listColumns(conn, table)
	if err != nil || len(columns) == 0 {
		return TableInfo{}
	}

	return TableInfo{
		Exists:    true,
		Columns:   columns,
		SKUColumn: findSKUColumn(columns),
	}
}

func listColumns(conn *sql.DB, table string) ([]string, error) {
	rows, err := conn.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, rows.Err()
}

func findSKUColumn(columns []string) *string {
	for _, pattern := range skuColumnPatterns {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col), pattern) {
				c := col
				return &c
			}
		}
	}
	return nil
}
