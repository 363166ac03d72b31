// Package security holds the checks applied to file names that come from
// config files rather than from the command line.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveWithin joins name onto dir and checks that the result stays inside
// dir. Absolute names are accepted only when they already lie inside dir.
// The check is lexical so it works on any fsutil.FileSystem; symlinks are not
// followed.
func ResolveWithin(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty file name")
	}
	base := filepath.Clean(dir)
	path := filepath.Clean(name)
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", fmt.Errorf("path %s is outside %s: %w", name, dir, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal detected: %s escapes %s", name, dir)
	}
	return path, nil
}

// maxFilenameLen bounds SanitizeFilename output.
const maxFilenameLen = 128

// SanitizeFilename maps s to a name safe to use as a single path element:
// ASCII letters, digits, '.', '_' and '-' are kept, every other run of
// characters becomes one underscore, and leading or trailing dots and
// underscores are trimmed. An empty result becomes "unknown".
func SanitizeFilename(s string) string {
	var b strings.Builder
	prevUnderscore := false
	for _, r := range s {
		if b.Len() >= maxFilenameLen {
			break
		}
		if isSafeRune(r) {
			b.WriteRune(r)
			prevUnderscore = r == '_'
			continue
		}
		if !prevUnderscore {
			b.WriteByte('_')
			prevUnderscore = true
		}
	}
	if out := strings.Trim(b.String(), "._"); out != "" {
		return out
	}
	return "unknown"
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}
