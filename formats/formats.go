// Package formats renders a window of table rows in a named output
// format. Formats live in a registry so callers can offer the available
// names as a flag and look the chosen one up by string.
package formats

import (
	"fmt"
	"sort"
	"strings"
)

// OutputFormat defines how a rendered window of rows is serialized.
type OutputFormat struct {
	// Name is the format identifier (lowercase alphanumeric, dashes,
	// underscores).
	Name string

	// Extension is the file extension including the dot (e.g. ".csv").
	Extension string

	// Render serializes the visible columns and the stringified cells of
	// the rows to render, one row per inner slice, index-aligned with
	// columns.
	Render func(columns []string, rows [][]string) (string, error)
}

// registry holds all available output formats.
var registry = make(map[string]*OutputFormat)

// Register adds a format to the registry.
func Register(format *OutputFormat) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}
	if !strings.HasPrefix(format.Extension, ".") {
		format.Extension = "." + format.Extension
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns a format by name.
func Get(name string) (*OutputFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(List(), ", "))
	}
	return format, nil
}

// List returns all registered format names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
