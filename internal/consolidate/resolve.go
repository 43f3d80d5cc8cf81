package consolidate

import (
	"sort"

	"skumerge/internal"
	"skumerge/internal/util"
)

// fieldPriority ranks sources per field for conflict resolution only.
// Commercial fields trust the Excel imports first; descriptive fields
// trust the catalogue extracts first. Changing an order changes which
// value wins downstream, so these stay fixed.
var fieldPriority = map[internal.Field][]internal.SourceName{
	internal.FieldName:           {internal.SourceCatalogue, internal.SourceDatabase, internal.SourceExcel},
	internal.FieldDescription:    {internal.SourceCatalogue, internal.SourceExcel, internal.SourceDatabase},
	internal.FieldPrice:          {internal.SourceExcel, internal.SourceDatabase, internal.SourceCatalogue},
	internal.FieldCost:           {internal.SourceExcel, internal.SourceDatabase, internal.SourceCatalogue},
	internal.FieldInventory:      {internal.SourceExcel, internal.SourceDatabase, internal.SourceCatalogue},
	internal.FieldSpecifications: {internal.SourceCatalogue, internal.SourceDatabase, internal.SourceExcel},
	internal.FieldCategory:       {internal.SourceCatalogue, internal.SourceDatabase, internal.SourceExcel},
	internal.FieldManufacturer:   {internal.SourceCatalogue, internal.SourceDatabase, internal.SourceExcel},
}

// Resolve picks the winning value for a field from the per-source values
// and reports a ConflictRecord when the sources actually disagreed.
// Agreement across sources is not a conflict, however many sources agree.
func Resolve(field internal.Field, valuesBySource map[internal.SourceName]any) (any, *internal.ConflictRecord) {
	switch len(valuesBySource) {
	case 0:
		return nil, nil
	case 1:
		for _, value := range valuesBySource {
			return value, nil
		}
	}

	if allEqual(valuesBySource) {
		return valuesBySource[firstContributor(valuesBySource)], nil
	}

	for _, source := range fieldPriority[field] {
		value, ok := valuesBySource[source]
		if !ok {
			continue
		}
		return value, &internal.ConflictRecord{
			Field:             field,
			ChosenSource:      source,
			ChosenValue:       value,
			ConflictingValues: others(valuesBySource, source),
		}
	}

	// No priority source contributed; take the first contributor (sorted
	// for determinism) and mark the record so reviewers can see the
	// tie-break was arbitrary.
	source := firstContributor(valuesBySource)
	value := valuesBySource[source]
	return value, &internal.ConflictRecord{
		Field:             field,
		ChosenSource:      source,
		ChosenValue:       value,
		ConflictingValues: others(valuesBySource, source),
		ResolutionMethod:  "fallback",
	}
}

func firstContributor(valuesBySource map[internal.SourceName]any) internal.SourceName {
	names := make([]string, 0, len(valuesBySource))
	for source := range valuesBySource {
		names = append(names, string(source))
	}
	sort.Strings(names)
	return internal.SourceName(names[0])
}

func allEqual(valuesBySource map[internal.SourceName]any) bool {
	first := ""
	seen := false
	for _, value := range valuesBySource {
		s := util.Stringify(value)
		if !seen {
			first = s
			seen = true
			continue
		}
		if s != first {
			return false
		}
	}
	return true
}

func others(valuesBySource map[internal.SourceName]any, chosen internal.SourceName) map[internal.SourceName]any {
	out := make(map[internal.SourceName]any, len(valuesBySource)-1)
	for source, value := range valuesBySource {
		if source == chosen {
			continue
		}
		out[source] = value
	}
	return out
}
