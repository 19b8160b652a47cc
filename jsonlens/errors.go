package jsonlens

import "fmt"

// ParseError reports that raw input could not become a dataset: the text
// is not valid JSON, or its top-level value is not an object or an array
// of objects. A ParseError is recoverable; the store's current dataset is
// left untouched when load fails.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse dataset: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse dataset: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
