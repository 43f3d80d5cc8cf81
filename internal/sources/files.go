package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"skumerge/internal"
)

// Excel scans excel_import_*.json snapshots, newest first, for the SKU
// under each file's processed_data key.
func (s *Set) Excel(sku string) Result {
	return s.scanSnapshots(internal.SourceExcel, "excel_import_*.json", "processed_data", sku)
}

// Catalogue scans extracted_*.json snapshots, newest first, for the SKU
// under each file's products key.
func (s *Set) Catalogue(sku string) Result {
	return s.scanSnapshots(internal.SourceCatalogue, "extracted_*.json", "products", sku)
}

// scanSnapshots opens matching files in modification-time order, newest
// first, and returns the first payload found for sku. Unreadable or
// malformed files are printed and skipped; the scan is read-only.
func (s *Set) scanSnapshots(source internal.SourceName, pattern, key, sku string) Result {
	paths, err := filepath.Glob(filepath.Join(s.tempDir, pattern))
	if err != nil || len(paths) == 0 {
		return notFound(source)
	}

	sortByModTimeDesc(paths)

	for _, path := range paths {
		payload, ok := readSnapshotEntry(path, key, sku)
		if !ok {
			continue
		}
		return Result{Source: source, Found: true, Payload: payload}
	}
	return notFound(source)
}

func readSnapshotEntry(path, key, sku string) (internal.SourcePayload, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("sources: cannot read %s: %v\n", path, err)
		return nil, false
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Printf("sources: malformed snapshot %s: %v\n", path, err)
		return nil, false
	}

	section, ok := doc[key].(map[string]any)
	if !ok {
		return nil, false
	}
	entry, ok := section[sku].(map[string]any)
	if !ok {
		return nil, false
	}
	return internal.SourcePayload(entry), true
}

func sortByModTimeDesc(paths []string) {
	type stamped struct {
		path string
		mod  int64
	}
	entries := make([]stamped, 0, len(paths))
	for _, p := range paths {
		var mod int64
		if info, err := os.Stat(p); err == nil {
			mod = info.ModTime().UnixNano()
		}
		entries = append(entries, stamped{path: p, mod: mod})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].mod > entries[j].mod })
	for i, e := range entries {
		paths[i] = e.path
	}
}
