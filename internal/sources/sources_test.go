package sources

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"skumerge/internal"
)

func writeSnapshot(t *testing.T, dir, name string, doc map[string]any, age time.Duration) {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func TestExcelAdapterFindsSKU(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "excel_import_20250101.json", map[string]any{
		"processed_data": map[string]any{
			"AARC": map[string]any{"name": "Rave 200", "price": "6650"},
		},
		"summary": map[string]any{"products": 1},
	}, 0)

	set := NewSet(nil, dir)
	res := set.Excel("AARC")
	if !res.Found {
		t.Fatalf("expected found")
	}
	if res.Payload["name"] != "Rave 200" || res.Payload["price"] != "6650" {
		t.Fatalf("payload = %+v", res.Payload)
	}
}

func TestExcelAdapterNewestFileWins(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "excel_import_old.json", map[string]any{
		"processed_data": map[string]any{"X1": map[string]any{"price": "100"}},
	}, time.Hour)
	writeSnapshot(t, dir, "excel_import_new.json", map[string]any{
		"processed_data": map[string]any{"X1": map[string]any{"price": "150"}},
	}, 0)

	set := NewSet(nil, dir)
	res := set.Excel("X1")
	if !res.Found || res.Payload["price"] != "150" {
		t.Fatalf("expected newest file's value, got %+v", res)
	}
}

func TestExcelAdapterFallsThroughToOlderFile(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "excel_import_old.json", map[string]any{
		"processed_data": map[string]any{"X1": map[string]any{"price": "100"}},
	}, time.Hour)
	writeSnapshot(t, dir, "excel_import_new.json", map[string]any{
		"processed_data": map[string]any{"OTHER": map[string]any{"price": "999"}},
	}, 0)

	set := NewSet(nil, dir)
	res := set.Excel("X1")
	if !res.Found || res.Payload["price"] != "100" {
		t.Fatalf("expected older file's value, got %+v", res)
	}
}

func TestCatalogueAdapterUsesProductsKey(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "extracted_20250101.json", map[string]any{
		"products": map[string]any{
			"AARC": map[string]any{"name": "LYNX Rave 200", "category": "Snowmobile"},
		},
	}, 0)

	set := NewSet(nil, dir)
	res := set.Catalogue("AARC")
	if !res.Found || res.Payload["category"] != "Snowmobile" {
		t.Fatalf("payload = %+v", res.Payload)
	}
	if other := set.Catalogue("MISSING"); other.Found {
		t.Fatalf("expected not found for missing sku")
	}
}

func TestAdaptersSwallowMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "excel_import_bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	writeSnapshot(t, dir, "excel_import_good.json", map[string]any{
		"processed_data": map[string]any{"X1": map[string]any{"price": "100"}},
	}, time.Hour)

	set := NewSet(nil, dir)
	res := set.Excel("X1")
	if !res.Found || res.Payload["price"] != "100" {
		t.Fatalf("expected scan to survive malformed file, got %+v", res)
	}
}

func TestDatabaseAdapterWithoutConnection(t *testing.T) {
	set := NewSet(nil, t.TempDir())
	if res := set.Lookup(internal.SourceDatabase, "AARC"); res.Found {
		t.Fatalf("expected not found without a connection")
	}
}
