package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayValue converts a raw JSON value into its chart cell text using
// explicit type switching. Booleans render capitalized (True/False), numbers
// render without a trailing decimal when whole, lists render space-separated
// inside brackets.
func DisplayValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []any:
		parts := make([]string, len(v))
		for i, entry := range v {
			parts[i] = DisplayValue(entry)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
