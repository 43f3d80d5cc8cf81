package consolidate

import (
	"testing"

	"skumerge/internal"
)

func TestResolveSingleSourcePassthrough(t *testing.T) {
	value, conflict := Resolve(internal.FieldPrice, map[internal.SourceName]any{
		internal.SourceDatabase: "6650",
	})
	if value != "6650" {
		t.Fatalf("value = %v", value)
	}
	if conflict != nil {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}
}

func TestResolveNoContributors(t *testing.T) {
	value, conflict := Resolve(internal.FieldPrice, map[internal.SourceName]any{})
	if value != nil || conflict != nil {
		t.Fatalf("expected nil, nil; got %v, %+v", value, conflict)
	}
}

func TestResolveAgreementSuppressesConflict(t *testing.T) {
	value, conflict := Resolve(internal.FieldName, map[internal.SourceName]any{
		internal.SourceExcel:     "LYNX Rave 200",
		internal.SourceCatalogue: "LYNX Rave 200",
	})
	if value != "LYNX Rave 200" {
		t.Fatalf("value = %v", value)
	}
	if conflict != nil {
		t.Fatalf("agreement must not record a conflict: %+v", conflict)
	}
}

func TestResolveAgreementAcrossNumericForms(t *testing.T) {
	// "6650" from one snapshot and 6650 parsed as a JSON number elsewhere
	// stringify identically and therefore agree.
	value, conflict := Resolve(internal.FieldPrice, map[internal.SourceName]any{
		internal.SourceExcel:    "6650",
		internal.SourceDatabase: 6650.0,
	})
	if value == nil || conflict != nil {
		t.Fatalf("expected agreement, got %v, %+v", value, conflict)
	}
}

func TestResolvePriceTieBreakPrefersExcel(t *testing.T) {
	value, conflict := Resolve(internal.FieldPrice, map[internal.SourceName]any{
		internal.SourceDatabase: "A",
		internal.SourceExcel:    "B",
	})
	if value != "B" {
		t.Fatalf("value = %v, want excel's B", value)
	}
	if conflict == nil {
		t.Fatalf("expected a conflict record")
	}
	if conflict.ChosenSource != internal.SourceExcel || conflict.ChosenValue != "B" {
		t.Fatalf("conflict = %+v", conflict)
	}
	if conflict.ConflictingValues[internal.SourceDatabase] != "A" {
		t.Fatalf("conflicting values = %v", conflict.ConflictingValues)
	}
	if conflict.ResolutionMethod != "" {
		t.Fatalf("priority resolution must not be marked fallback")
	}
}

func TestResolveNameTieBreakPrefersCatalogue(t *testing.T) {
	value, conflict := Resolve(internal.FieldName, map[internal.SourceName]any{
		internal.SourceExcel:     "Rave 200",
		internal.SourceCatalogue: "LYNX Rave 200",
	})
	if value != "LYNX Rave 200" {
		t.Fatalf("value = %v", value)
	}
	if conflict == nil || conflict.ChosenSource != internal.SourceCatalogue {
		t.Fatalf("conflict = %+v", conflict)
	}
}

func TestResolveFallbackWhenPriorityMisses(t *testing.T) {
	// An unknown source name is outside every priority list, forcing the
	// arbitrary-pick path.
	odd := internal.SourceName("legacy")
	other := internal.SourceName("scratch")
	value, conflict := Resolve(internal.FieldPrice, map[internal.SourceName]any{
		odd:   "1",
		other: "2",
	})
	if value == nil {
		t.Fatalf("expected a value")
	}
	if conflict == nil || conflict.ResolutionMethod != "fallback" {
		t.Fatalf("expected fallback marker, got %+v", conflict)
	}
}
