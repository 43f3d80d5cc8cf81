package util

import (
	"fmt"
	"strconv"
	"strings"
)

func StringPtr(v string) *string { return &v }

func FloatPtr(v float64) *float64 { return &v }

// IsEmpty reports whether a payload value should be treated as absent:
// nil, a blank string, or an empty map/slice.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case map[string]any:
		return len(t) == 0
	case map[string]string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// Stringify renders a payload value for equality comparison and display.
// JSON numbers arrive as float64; integral floats print without the
// trailing ".0" so "6650" and 6650.0 compare equal.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// ParseNumber extracts a numeric value from strings like "6650", "6 650,00"
// or " 129.95 ". Returns nil when the input has no usable number.
func ParseNumber(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return FloatPtr(t)
	case float32:
		return FloatPtr(float64(t))
	case int:
		return FloatPtr(float64(t))
	case int64:
		return FloatPtr(float64(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, " ", "")
		if strings.Contains(s, ",") && !strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return FloatPtr(parsed)
	default:
		return nil
	}
}

// FirstNonEmpty returns the first string with non-blank content.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
