package consolidate

import (
	"skumerge/internal"
)

// requiredFields and optionalFields split the confidence score's field
// coverage; the required trio dominates at 70%.
var requiredFields = []internal.Field{internal.FieldName, internal.FieldPrice, internal.FieldDescription}

var optionalFields = []internal.Field{
	internal.FieldCost,
	internal.FieldInventory,
	internal.FieldSpecifications,
	internal.FieldCategory,
	internal.FieldManufacturer,
}

// completenessWeights: core commerce fields count double. The SKU itself
// always contributes its weight since it echoes the input.
var completenessWeights = []struct {
	field  internal.Field
	weight int
}{
	{internal.FieldName, 2},
	{internal.FieldPrice, 2},
	{internal.FieldDescription, 2},
	{internal.FieldSpecifications, 1},
	{internal.FieldCategory, 1},
	{internal.FieldManufacturer, 1},
	{internal.FieldCost, 1},
	{internal.FieldInventory, 1},
}

const (
	skuWeight   = 2
	totalWeight = 13
)

// Confidence blends source coverage (40%) with field coverage (60%),
// where the name/price/description trio carries 70% of field coverage.
// Capped at 1.0.
func Confidence(data map[internal.Field]any, sourceCount int) float64 {
	sourceScore := float64(sourceCount) / float64(len(internal.AllSources))

	required := coverage(data, requiredFields)
	optional := coverage(data, optionalFields)
	fieldScore := 0.7*required + 0.3*optional

	score := 0.4*sourceScore + 0.6*fieldScore
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Completeness is the weighted fill ratio over the tracked fields plus
// the SKU, out of a maximum weight of 13.
func Completeness(data map[internal.Field]any, sku string) float64 {
	filled := 0
	if sku != "" {
		filled += skuWeight
	}
	for _, entry := range completenessWeights {
		if _, ok := data[entry.field]; ok {
			filled += entry.weight
		}
	}
	return float64(filled) / float64(totalWeight)
}

// Recommend labels a record for review, evaluated strictly in this order.
func Recommend(confidence, completeness float64, conflicts int) internal.Recommendation {
	switch {
	case confidence >= 0.8 && completeness >= 0.7 && conflicts <= 1:
		return internal.RecommendationHighConfidence
	case confidence >= 0.6 && completeness >= 0.5:
		return internal.RecommendationMediumConfidence
	case conflicts > 3:
		return internal.RecommendationHighConflicts
	case completeness < 0.3:
		return internal.RecommendationLowDataCoverage
	default:
		return internal.RecommendationLowConfidence
	}
}

func coverage(data map[internal.Field]any, fields []internal.Field) float64 {
	if len(fields) == 0 {
		return 0
	}
	present := 0
	for _, field := range fields {
		if _, ok := data[field]; ok {
			present++
		}
	}
	return float64(present) / float64(len(fields))
}
