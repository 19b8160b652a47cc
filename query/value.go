package query

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Stringify renders a resolved value the way it would appear in a table
// cell: strings as-is, numbers without a trailing ".0", booleans as
// true/false, nil as the empty string, containers as compact JSON.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}

// parseFloat parses s as a locale-independent float. NaN and infinities
// are rejected: every numeric comparison in the pipeline is defined over
// finite values only.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// newCollator builds the collator used for non-numeric ordering. The
// undetermined language tag gives locale-aware yet host-independent
// results.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
