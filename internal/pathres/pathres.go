// Package pathres resolves dot-separated field paths against decoded JSON
// records. Resolution fans out across arrays: when a path segment lands on
// an array, every element of that array becomes a candidate for the next
// segment, so a single path can yield many values.
package pathres

import "strings"

// Resolve returns every value reachable from record by following path, one
// dot-separated property name at a time. At each segment, only candidates
// that are non-null objects are descended into; everything else is dropped
// at that step. A property holding an array is splatted: each element
// becomes its own candidate, in array order.
//
// Resolve never fails. A path that reaches nothing returns an empty slice.
// JSON nulls that survive to the end are returned as nil entries; callers
// decide what null means for them.
func Resolve(record map[string]interface{}, path string) []interface{} {
	if record == nil || path == "" {
		return nil
	}

	candidates := []interface{}{record}
	for _, segment := range strings.Split(path, ".") {
		var next []interface{}
		for _, candidate := range candidates {
			obj, ok := candidate.(map[string]interface{})
			if !ok {
				continue
			}
			value, ok := obj[segment]
			if !ok {
				continue
			}
			if arr, ok := value.([]interface{}); ok {
				next = append(next, arr...)
			} else {
				next = append(next, value)
			}
		}
		candidates = next
	}
	return candidates
}

// First returns the first value Resolve would produce, or ok=false when the
// path resolves to nothing.
func First(record map[string]interface{}, path string) (interface{}, bool) {
	values := Resolve(record, path)
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}
