package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileNotFound is returned by ResolvePath when no candidate exists.
var ErrFileNotFound = errors.New("catalog: file not found")

// ResolvePath returns the first existing regular file among name itself,
// dir/name for each dir, and dir/base(name) for each dir.
func ResolvePath(name string, dirs []string) (string, error) {
	candidates := []string{name}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if base := filepath.Base(name); base != name {
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(dir, base))
		}
	}

	tried := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		tried = append(tried, c)

		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %s (tried %s)", ErrFileNotFound, name, strings.Join(tried, ", "))
}
