package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/ewanmcn/wintermeds/internal/common"
)

// DefaultExtractPattern matches the monthly prescriptions-in-the-community
// extract files as published.
const DefaultExtractPattern = "pitc*.csv"

// DiscoverExtracts finds the monthly extract files under dir matching
// pattern, in a deterministic (sorted) order. A pattern that names a single
// existing file directly is accepted as-is.
func DiscoverExtracts(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultExtractPattern
	}

	full := filepath.Join(dir, pattern)
	matches, err := filepath.Glob(full)
	if err != nil {
		return nil, fmt.Errorf("invalid extract pattern %s: %w", full, err)
	}

	if len(matches) == 0 {
		// Not a glob hit; maybe the caller passed a concrete file.
		if _, statErr := os.Stat(full); statErr == nil {
			matches = []string{full}
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrNoExtracts, full)
	}

	sort.Strings(matches)
	slog.Debug("Discovered extract files",
		"dir", dir,
		"pattern", pattern,
		"count", len(matches))

	return matches, nil
}
