package sources

import (
	"skumerge/internal"
	"skumerge/internal/locator"
)

// Database looks the SKU up through the product locator and wraps the
// merged row under product_data, the shape the field extractor expects
// for database-origin records.
func (s *Set) Database(sku string) Result {
	if s.conn == nil {
		return notFound(internal.SourceDatabase)
	}

	located := locator.FindProduct(s.conn, sku)
	if !located.Found {
		return notFound(internal.SourceDatabase)
	}

	return Result{
		Source: internal.SourceDatabase,
		Found:  true,
		Payload: internal.SourcePayload{
			"product_data":  located.Record,
			"completeness":  located.Completeness,
			"source_tables": located.SourceTables,
		},
	}
}
