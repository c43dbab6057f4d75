package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
)

// DateLayouts are tried in order when parsing date strings.
var DateLayouts = []string{
	time.DateTime,
	time.RFC3339,
	time.DateOnly,
}

// toNumber converts a raw JSON value to a float64. Without coercion only JSON numbers
// are accepted. With coercion null is 0, booleans are 0 or 1 and strings are parsed
// after trimming, the empty string being 0.
func toNumber(v any, coerce bool) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	if !coerce {
		return 0, false
	}

	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toInt is toNumber restricted to integral values. Integer literals are parsed exactly;
// other inputs go through float64 and must fall inside the int64 range.
func toInt(v any, coerce bool) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		i, err := n.Int64()
		if err == nil {
			return i, true
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
	}
	f, ok := toNumber(v, coerce)
	if !ok || f != math.Trunc(f) || f >= 1<<63 || f < -(1<<63) {
		return 0, false
	}
	return int64(f), true
}

// toString accepts JSON strings, and with coercion renders numbers and booleans.
// A coerced null is the empty string.
func toString(v any, coerce bool) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if !coerce {
		return "", false
	}

	switch t := v.(type) {
	case nil:
		return "", true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// toBool accepts JSON booleans, and with coercion applies truthiness: null, zero and
// the empty string are false, everything else is true.
func toBool(v any, coerce bool) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if !coerce {
		return false, false
	}

	switch t := v.(type) {
	case nil:
		return false, true
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0, true
	case string:
		return t != "", true
	}
	return true, true
}

// parseDate parses s with DateLayouts in loc. Empty strings and the all-zero MySQL
// date report zero with ok.
func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "0000-00-00") {
		return time.Time{}, true
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// splitInts parses a comma separated list of integers. Blank items are skipped.
func splitInts(s string) ([]int, bool) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// typeName describes a raw JSON value in error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "unknown"
}
