// Package batch runs the detect -> normalize -> hash pipeline over
// newline-delimited input where record types are not declared.
package batch

import "strings"

// DefaultMaxRows is the ceiling on non-blank input lines per batch.
const DefaultMaxRows = 10000

// Headers labels the four output columns, in order.
var Headers = []string{"Input", "Normalized", "SHA256", "Base64"}

// Config bounds one processor instance.
type Config struct {
	// MaxRows caps non-blank lines per batch. Zero means DefaultMaxRows.
	MaxRows int `validate:"gte=1,lte=1000000"`
	// Workers bounds ProcessParallel concurrency. Zero picks a default.
	Workers int `validate:"gte=0,lte=256"`
}

// ProcessedRow is one accepted input line with its canonical form and
// both digest encodings of that canonical form.
type ProcessedRow struct {
	Original   string
	Normalized string
	SHA256     string
	Base64     string
}

// ProcessedData is the result of one batch invocation. It is created
// fresh per call and must be treated as immutable once returned.
type ProcessedData struct {
	Headers     []string
	Rows        []ProcessedRow
	SkippedRows int
}

// splitLines breaks raw content into trimmed, non-blank lines.
func splitLines(contents string) []string {
	raw := strings.Split(contents, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// candidate extracts the value before the first comma. The second return
// is false when the column is empty and the line must be ignored without
// touching the skip counter.
func candidate(line string) (string, bool) {
	value := line
	if i := strings.Index(line, ","); i >= 0 {
		value = line[:i]
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
