// Package jsonpath parses the field paths accepted by qry. Two notations are
// supported:
//   - Dotted: owner.name
//   - Bracket: $['owner']['name'], needed when a key itself contains a dot,
//     as in $['build.version']
//
//nolint:godoclint // Package comment is correctly formatted
package jsonpath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for path validation.
var (
	ErrPathEmpty         = errors.New("path cannot be empty")
	ErrPathEmptySegment  = errors.New("path contains empty segment")
	ErrPathInvalidSyntax = errors.New("invalid bracket notation syntax")
)

var (
	segmentRe = regexp.MustCompile(`\['([^']*)'\]`)       //nolint:gochecknoglobals
	prefixRe  = regexp.MustCompile(`^\$(?:\['[^']*'\])+`) //nolint:gochecknoglobals
)

// IsBracketPath reports whether path uses bracket notation.
func IsBracketPath(path string) bool {
	return strings.HasPrefix(path, "$[")
}

// Parse splits path into its keys.
// Example: Parse("$['mailing.address']['street']") returns
// []string{"mailing.address", "street"}.
func Parse(path string) ([]string, error) {
	if path == "" {
		return nil, ErrPathEmpty
	}

	if !IsBracketPath(path) {
		keys := strings.Split(path, ".")
		for i, k := range keys {
			if k == "" {
				return nil, fmt.Errorf("%w: segment %d of %q", ErrPathEmptySegment, i, path)
			}
		}

		return keys, nil
	}

	matches := segmentRe.FindAllStringSubmatch(path, -1)

	// Rebuilding the path from what matched catches stray characters
	// between or after segments.
	var rebuilt strings.Builder

	rebuilt.WriteString("$")

	keys := make([]string, len(matches))

	for i, m := range matches {
		if m[1] == "" {
			return nil, fmt.Errorf("%w: segment %d of %q", ErrPathEmptySegment, i, path)
		}

		keys[i] = m[1]
		rebuilt.WriteString(m[0])
	}

	if len(keys) == 0 || rebuilt.String() != path {
		return nil, fmt.Errorf("%w: %s", ErrPathInvalidSyntax, path)
	}

	return keys, nil
}

// Validate reports whether path can be parsed.
func Validate(path string) error {
	_, err := Parse(path)

	return err
}

// Lookup walks keys through nested objects. The second result is false when
// a key is missing or an intermediate value is not an object.
func Lookup(input map[string]any, keys []string) (any, bool) {
	var current any = input

	for _, key := range keys {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		if current, ok = obj[key]; !ok {
			return nil, false
		}
	}

	return current, true
}

// PrefixLen returns the length of the bracket path at the start of s, or 0
// when s does not start with one. Keys inside the brackets may hold any
// character but a single quote, so callers scanning s for delimiters can
// skip the prefix.
func PrefixLen(s string) int {
	return len(prefixRe.FindString(s))
}
