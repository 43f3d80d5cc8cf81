// Package snapshot persists consolidated records into the document
// repository's _consolidated directory. Every run writes a timestamped
// file for the audit trail plus a rewritten "latest" file; old snapshots
// are never deleted.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"skumerge/internal"
)

const timestampLayout = "20060102_150405"

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the timestamped snapshot and overwrites the latest one.
// Both are indent-formatted UTF-8 JSON dumps of the record.
func (s *Store) Save(record *internal.ConsolidatedRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	stamped := filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", record.SKU, time.Now().Format(timestampLayout)))
	if err := os.WriteFile(stamped, raw, 0o644); err != nil {
		return err
	}
	return os.WriteFile(s.latestPath(record.SKU), raw, 0o644)
}

// LoadLatest reads the latest snapshot for sku. Returns nil with no error
// when none has been written yet.
func (s *Store) LoadLatest(sku string) (*internal.ConsolidatedRecord, error) {
	raw, err := os.ReadFile(s.latestPath(sku))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record internal.ConsolidatedRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) latestPath(sku string) string {
	return filepath.Join(s.dir, sku+"_latest.json")
}
