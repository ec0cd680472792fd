// Package feedutil holds the defensive field extraction helpers shared by
// the feed parsers. Every accessor is default-on-missing: an absent or
// mistyped field yields the zero/fallback value instead of failing the
// whole parse.
package feedutil

import "strconv"

// String extracts a string field, returning fallback when the key is
// missing or not a string.
func String(m map[string]interface{}, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// Int extracts an integer field. JSON numbers decode as float64; feeds
// occasionally ship scores as strings, so both are accepted.
func Int(m map[string]interface{}, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}

// Map extracts a nested object field, returning nil when absent.
func Map(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	if nested, ok := m[key].(map[string]interface{}); ok {
		return nested
	}
	return nil
}

// Array extracts an array field, returning nil when absent.
func Array(m map[string]interface{}, key string) []interface{} {
	if m == nil {
		return nil
	}
	if arr, ok := m[key].([]interface{}); ok {
		return arr
	}
	return nil
}
