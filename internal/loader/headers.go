// Package loader reads the monthly prescription extracts and the reference
// tables, normalizes their inconsistent schemas, and merges them into a
// single unified record stream.
package loader

import "strings"

// normalizeHeader folds a raw column name into the canonical form used for
// matching: trimmed, lowercased, runs of non-alphanumerics collapsed to a
// single underscore. Source schemas vary by year, so all header matching
// happens on normalized names.
func normalizeHeader(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastUnderscore := true // swallow leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}

// headerIndex maps normalized column names to their position in the header row.
type headerIndex map[string]int

func indexHeaders(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// lookup returns the position of the first alias present in the header.
func (h headerIndex) lookup(aliases ...string) (int, bool) {
	for _, name := range aliases {
		if i, ok := h[name]; ok {
			return i, true
		}
	}
	return 0, false
}

// field safely extracts a trimmed cell value; short rows yield "".
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
