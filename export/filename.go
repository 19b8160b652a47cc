package export

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

const maxBaseLength = 40

var dashRuns = regexp.MustCompile("-+")

// Filename builds a download name for an export: a sanitized base, a
// timestamp, and the .json extension, e.g.
// "orders-2026-08-26T15-04-05.json". The base is lowercased, restricted
// to alphanumerics, dashes and underscores, and truncated to 40 chars;
// an empty or fully-sanitized-away base falls back to "export".
func Filename(base string, now time.Time) string {
	sanitized := sanitizeBase(base)
	timestamp := now.Format("2006-01-02T15-04-05")
	return sanitized + "-" + timestamp + ".json"
}

func sanitizeBase(base string) string {
	result := strings.ToLower(base)
	result = strings.ReplaceAll(result, " ", "-")

	var builder strings.Builder
	for _, r := range result {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			builder.WriteRune(r)
		}
	}

	result = dashRuns.ReplaceAllString(builder.String(), "-")
	result = strings.Trim(result, "-")

	if len(result) > maxBaseLength {
		result = result[:maxBaseLength]
	}
	if result == "" {
		result = "export"
	}
	return result
}
