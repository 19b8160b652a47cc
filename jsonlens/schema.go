package jsonlens

import (
	"fmt"

	"github.com/buger/jsonparser"
)

// Schema discovery projects heterogeneous nested JSON into a flat column
// space. Each column is a dot-separated leaf path; positions holding a
// non-null object, or an array whose first element is a non-null object,
// are walked through rather than emitted.
//
// Column order is the table's column order, so the walk must see object
// keys in document order. Go maps do not keep that order, which is why
// discovery walks the raw bytes with jsonparser instead of the decoded
// map[string]interface{} records the query pipeline uses.

// Flatten returns the leaf field paths of a single raw JSON object, in
// depth-first document key order. Duplicate paths within one record (from
// array-of-objects fan-out) are returned as-is; DetectFields collapses
// them.
func Flatten(raw []byte) ([]string, error) {
	paths, _, err := flattenObject(raw, "", nil)
	if err != nil {
		return nil, fmt.Errorf("flatten record: %w", err)
	}
	return paths, nil
}

// DetectFields unions Flatten over every record with set semantics:
// first-seen order retained, duplicates collapsed.
func DetectFields(raws [][]byte) ([]string, error) {
	var schema []string
	seen := make(map[string]struct{})
	for i, raw := range raws {
		paths, err := Flatten(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		for _, p := range paths {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			schema = append(schema, p)
		}
	}
	return schema, nil
}

// flattenObject walks the members of one JSON object. It also reports the
// member count so callers can apply the empty-object-is-a-leaf rule at the
// key site; an empty object reached through array fan-out contributes
// nothing on its own.
func flattenObject(data []byte, prefix string, out []string) ([]string, int, error) {
	members := 0
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		members++
		path := string(key)
		if prefix != "" {
			path = prefix + "." + path
		}
		var err error
		out, err = flattenValue(value, dataType, path, out)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return out, members, nil
}

func flattenValue(value []byte, dataType jsonparser.ValueType, path string, out []string) ([]string, error) {
	switch dataType {
	case jsonparser.Object:
		walked, members, err := flattenObject(value, path, out)
		if err != nil {
			return nil, err
		}
		if members == 0 {
			// An empty object held by a key is itself a leaf.
			return append(out, path), nil
		}
		return walked, nil
	case jsonparser.Array:
		elements, types, err := arrayElements(value)
		if err != nil {
			return nil, err
		}
		// An array is walked element-wise only when its first element is
		// an object (null has its own type, so Object means non-null).
		// The first element alone decides: a mixed array is classified by
		// its first entry, a deliberate upstream compatibility behavior.
		if len(elements) > 0 && types[0] == jsonparser.Object {
			for i, element := range elements {
				if types[i] != jsonparser.Object {
					continue
				}
				out, _, err = flattenObject(element, path, out)
				if err != nil {
					return nil, err
				}
			}
			return out, nil
		}
		// Empty array or array of non-objects: the position is a leaf.
		return append(out, path), nil
	default:
		// Primitive or null.
		return append(out, path), nil
	}
}

// arrayElements collects the raw elements of a JSON array along with their
// types, in array order.
func arrayElements(data []byte) ([][]byte, []jsonparser.ValueType, error) {
	var (
		elements [][]byte
		types    []jsonparser.ValueType
		cbErr    error
	)
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if err != nil && cbErr == nil {
			cbErr = err
			return
		}
		elements = append(elements, value)
		types = append(types, dataType)
	})
	if err != nil {
		return nil, nil, err
	}
	if cbErr != nil {
		return nil, nil, cbErr
	}
	return elements, types, nil
}
