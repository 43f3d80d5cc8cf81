package consolidate

import (
	"strings"

	"skumerge/internal"
	"skumerge/internal/util"
)

// Extract pulls one logical field out of a source payload, walking that
// field's lookup chain until a step yields a usable value. Returns nil
// when no step matches; absence is never represented as an empty string.
func Extract(payload internal.SourcePayload, field internal.Field) any {
	chain, ok := fieldChains[field]
	if !ok || payload == nil {
		return nil
	}

	for _, step := range chain {
		var value any
		if step.derive != nil {
			value = step.derive(payload)
		} else {
			value = lookupPath(payload, step.path)
		}
		if !usable(field, value) {
			continue
		}
		return value
	}
	return nil
}

type lookupStep struct {
	path   []string
	derive func(internal.SourcePayload) any
}

func key(parts ...string) lookupStep { return lookupStep{path: parts} }

// Every chain starts with the field's own key, then the same key under
// the nested product_data mapping, then the field-specific aliases and
// derivations. Order is load-bearing.
var fieldChains = map[internal.Field][]lookupStep{
	internal.FieldName: {
		key("name"),
		key("product_data", "name"),
		key("product_name"),
		key("title"),
		{derive: deriveName},
	},
	internal.FieldDescription: {
		key("description"),
		key("product_data", "description"),
		key("product_description"),
		key("short_description"),
		{derive: deriveDescription},
	},
	internal.FieldPrice: {
		key("price"),
		key("product_data", "price"),
		key("pricing", "retail_price"),
		key("pricing", "price"),
		key("pricing", "msrp"),
		key("product_data", "price_fi"),
	},
	internal.FieldCost: {
		key("cost"),
		key("product_data", "cost"),
		key("pricing", "cost_price"),
		key("pricing", "wholesale_price"),
		key("pricing", "cost"),
	},
	internal.FieldInventory: {
		key("inventory"),
		key("product_data", "inventory"),
		key("inventory", "stock_quantity"),
		key("inventory", "available"),
		key("inventory", "qty"),
		key("stock"),
	},
	internal.FieldSpecifications: {
		key("specifications"),
		key("product_data", "specifications"),
		key("specs"),
		key("technical_specs"),
		{derive: deriveSpecifications},
	},
	internal.FieldCategory: {
		key("category"),
		key("product_data", "category"),
		key("product_category"),
		key("type"),
		{derive: deriveCategory},
	},
	internal.FieldManufacturer: {
		key("manufacturer"),
		key("product_data", "manufacturer"),
		key("brand"),
		key("supplier"),
		key("product_data", "brand"),
	},
}

// specLabels maps raw product_data columns to the labels the derived
// specifications mapping uses.
var specLabels = []struct {
	column string
	label  string
}{
	{"engine", "Engine"},
	{"track", "Track"},
	{"starter", "Starter Type"},
	{"gauge", "Gauge"},
	{"color", "Color"},
	{"year", "Model Year"},
	{"package", "Package"},
}

func lookupPath(payload internal.SourcePayload, path []string) any {
	var current any = map[string]any(payload)
	for _, part := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

// usable filters candidate values per field shape. The inventory and
// specifications keys sometimes hold nested mappings that later steps in
// the chain descend into, so a mapping is only a valid value for the
// specifications field.
func usable(field internal.Field, value any) bool {
	if util.IsEmpty(value) {
		return false
	}
	switch value.(type) {
	case map[string]any, map[string]string:
		return field == internal.FieldSpecifications
	case []any:
		return false
	}
	return true
}

func productData(payload internal.SourcePayload) map[string]any {
	if m, ok := payload["product_data"].(map[string]any); ok {
		return m
	}
	return nil
}

func dataString(payload internal.SourcePayload, column string) string {
	data := productData(payload)
	if data == nil {
		return ""
	}
	return util.Stringify(data[column])
}

// deriveName builds "{brand} {model}" from product_data, trimmed; a
// missing brand leaves the bare model name.
func deriveName(payload internal.SourcePayload) any {
	combined := strings.TrimSpace(strings.TrimSpace(dataString(payload, "brand")) + " " + dataString(payload, "model"))
	if combined == "" {
		return nil
	}
	return combined
}

// deriveDescription builds a sentence from the raw snowmobile columns:
// "{brand} {model} {year}. {engine}. {track}. {starter}. {color}" with
// empty parts dropped.
func deriveDescription(payload internal.SourcePayload) any {
	head := strings.Join(nonEmptyParts(
		dataString(payload, "brand"),
		dataString(payload, "model"),
		dataString(payload, "year"),
	), " ")

	parts := nonEmptyParts(
		head,
		dataString(payload, "engine"),
		dataString(payload, "track"),
		dataString(payload, "starter"),
		dataString(payload, "color"),
	)
	if len(parts) == 0 {
		return nil
	}
	return strings.Join(parts, ". ")
}

func deriveSpecifications(payload internal.SourcePayload) any {
	specs := map[string]string{}
	for _, entry := range specLabels {
		if v := dataString(payload, entry.column); v != "" {
			specs[entry.label] = v
		}
	}
	if len(specs) == 0 {
		return nil
	}
	return specs
}

// Brands whose models map onto the snowmobile taxonomy.
var snowmobileBrands = map[string]bool{
	"SKIDOO":  true,
	"SKI-DOO": true,
	"LYNX":    true,
}

// deriveCategory classifies by brand and model keywords. Unknown brands
// fall back to the generic powersport label; no brand means no category.
func deriveCategory(payload internal.SourcePayload) any {
	brand := strings.ToUpper(strings.TrimSpace(dataString(payload, "brand")))
	if brand == "" {
		return nil
	}
	if !snowmobileBrands[brand] {
		return "Powersport Vehicle"
	}

	model := strings.ToLower(dataString(payload, "model"))
	switch {
	case strings.Contains(model, "expedition"):
		return "Snowmobile - Touring"
	case strings.Contains(model, "summit"):
		return "Snowmobile - Mountain"
	case strings.Contains(model, "renegade"), strings.Contains(model, "backcountry"):
		return "Snowmobile - Trail"
	case strings.Contains(model, "ranger"):
		return "Snowmobile - Utility"
	default:
		return "Snowmobile"
	}
}

func nonEmptyParts(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}
