// Package record provides the record type and tolerant extraction of
// record sequences from loosely-structured JSON text.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one key/value mapping extracted from input, conceptually one
// displayable event. Values are the JSON-compatible types produced by
// decoding with json.Number preservation. Two keys are recognized:
// "timestamp" (milliseconds since the Unix epoch) and "display" (the text
// to render). Everything else is carried but ignored.
type Record map[string]any

// Timestamp returns the record's timestamp in milliseconds since the Unix
// epoch. Absent or non-numeric values default to 0. Numeric strings are
// accepted.
func (r Record) Timestamp() int64 {
	return coerceInt64(r["timestamp"])
}

// Display returns the record's display text. An absent key yields the
// empty string; any other JSON value is coerced to its canonical text form.
func (r Record) Display() string {
	v, ok := r["display"]
	if !ok {
		return ""
	}
	return coerceText(v)
}

// coerceInt64 converts a decoded JSON value to an integer millisecond
// timestamp, returning 0 when the value has no numeric reading.
func coerceInt64(v any) int64 {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(val)
	case int64:
		return val
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return i
		}
	}
	return 0
}

// coerceText converts a decoded JSON value to its canonical text form:
// strings as-is, numbers in their literal form, booleans as true/false,
// null as the empty string, and nested structures as compact JSON.
func coerceText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
