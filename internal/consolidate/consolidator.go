// Package consolidate merges per-SKU product data from the database,
// Excel import snapshots, and catalogue extract snapshots into one
// audited record with per-field conflict tracking.
package consolidate

import (
	"errors"
	"fmt"
	"time"

	"skumerge/internal"
	"skumerge/internal/snapshot"
	"skumerge/internal/sources"
)

// ErrNoData marks a SKU absent from every source. Callers get it wrapped
// with the SKU; match with errors.Is.
var ErrNoData = errors.New("no data found in any source")

type Consolidator struct {
	sources *sources.Set
	store   *snapshot.Store
}

// New builds a consolidator. A nil store disables persistence (used by
// the inspect paths and tests).
func New(set *sources.Set, store *snapshot.Store) *Consolidator {
	return &Consolidator{sources: set, store: store}
}

// Consolidate runs the full pipeline for one SKU: collect the sources,
// extract and resolve every tracked field, score, persist, return. The
// returned record is never mutated afterwards; re-running produces a
// fresh record and a fresh timestamped snapshot.
func (c *Consolidator) Consolidate(sku string) (*internal.ConsolidatedRecord, error) {
	record := &internal.ConsolidatedRecord{
		SKU:               sku,
		ConsolidationDate: time.Now().Format(time.RFC3339),
		SourcesChecked:    []internal.SourceName{},
		DataFound:         map[internal.SourceName]internal.SourcePayload{},
		ConsolidatedData:  map[internal.Field]any{},
		Conflicts:         []internal.ConflictRecord{},
	}

	for _, source := range internal.AllSources {
		result := c.sources.Lookup(source, sku)
		if !result.Found {
			continue
		}
		record.SourcesChecked = append(record.SourcesChecked, source)
		record.DataFound[source] = result.Payload
	}

	if len(record.SourcesChecked) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, sku)
	}

	for _, field := range internal.AllFields {
		valuesBySource := map[internal.SourceName]any{}
		for source, payload := range record.DataFound {
			if value := Extract(payload, field); value != nil {
				valuesBySource[source] = value
			}
		}

		value, conflict := Resolve(field, valuesBySource)
		if value == nil {
			continue
		}
		record.ConsolidatedData[field] = value
		if conflict != nil {
			record.Conflicts = append(record.Conflicts, *conflict)
		}
	}

	record.ConfidenceScore = Confidence(record.ConsolidatedData, len(record.SourcesChecked))
	record.CompletenessScore = Completeness(record.ConsolidatedData, sku)
	record.AIDescriptionReady = record.CompletenessScore > 0.3
	if record.AIDescriptionReady {
		record.AIDescriptionData = descriptionData(record)
	}
	record.Recommendation = Recommend(record.ConfidenceScore, record.CompletenessScore, len(record.Conflicts))

	if c.store != nil {
		if err := c.store.Save(record); err != nil {
			// Persistence is best-effort; the in-memory record stands.
			fmt.Printf("consolidate: snapshot write failed for %s: %v\n", sku, err)
		}
	}

	return record, nil
}

// ConsolidateBatch processes SKUs sequentially, one fully before the
// next, and aggregates the outcome counts for review.
func (c *Consolidator) ConsolidateBatch(skus []string) internal.BatchSummary {
	summary := internal.BatchSummary{}

	for _, sku := range skus {
		summary.TotalProcessed++

		record, err := c.Consolidate(sku)
		if err != nil {
			summary.Failed++
			summary.Items = append(summary.Items, internal.BatchItem{
				SKU:    sku,
				Status: "failed",
				Error:  err.Error(),
			})
			continue
		}

		summary.Successful++
		if record.Recommendation == internal.RecommendationHighConfidence {
			summary.HighConfidence++
		}
		if record.Recommendation != internal.RecommendationHighConfidence &&
			record.Recommendation != internal.RecommendationMediumConfidence {
			summary.NeedsReview++
		}

		summary.Items = append(summary.Items, internal.BatchItem{
			SKU:            sku,
			Status:         "ok",
			Confidence:     record.ConfidenceScore,
			Completeness:   record.CompletenessScore,
			Recommendation: record.Recommendation,
			Conflicts:      len(record.Conflicts),
			Record:         record,
		})
	}

	return summary
}

// descriptionData shapes the resolved fields for the downstream
// description generator. Absent fields stay absent; empty strings would
// silently degrade its templates.
func descriptionData(record *internal.ConsolidatedRecord) map[string]any {
	out := map[string]any{
		"sku":                record.SKU,
		"completeness_score": record.CompletenessScore,
	}
	for field, value := range record.ConsolidatedData {
		out[string(field)] = value
	}
	return out
}
