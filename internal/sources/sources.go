// Package sources adapts the three product data sources — the fragmented
// SQLite database, Excel import snapshots, and catalogue extraction
// snapshots — to one lookup shape. Adapters never return an error to the
// caller; every failure reads as the source not having the SKU.
package sources

import (
	"database/sql"

	"skumerge/internal"
)

// Result is one adapter's answer for a SKU.
type Result struct {
	Source  internal.SourceName
	Found   bool
	Payload internal.SourcePayload
}

func notFound(source internal.SourceName) Result {
	return Result{Source: source}
}

// Set bundles the three adapters over their shared dependencies. A nil
// conn disables the database adapter (it reports not found).
type Set struct {
	conn    *sql.DB
	tempDir string
}

func NewSet(conn *sql.DB, tempDir string) *Set {
	return &Set{conn: conn, tempDir: tempDir}
}

// Lookup dispatches to the adapter for source.
func (s *Set) Lookup(source internal.SourceName, sku string) Result {
	switch source {
	case internal.SourceDatabase:
		return s.Database(sku)
	case internal.SourceExcel:
		return s.Excel(sku)
	case internal.SourceCatalogue:
		return s.Catalogue(sku)
	default:
		return notFound(source)
	}
}
