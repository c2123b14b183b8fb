// Package records loads loosely typed documents for the qry tool and
// compares their field values.
package records

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amp-labs/amp-query/jsonpath"
	"github.com/amp-labs/amp-query/should"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotAList is returned when a document is not a list of objects.
	ErrNotAList = errors.New("document is not a list of objects")

	// ErrBadCondition is returned when a --where expression cannot be parsed.
	ErrBadCondition = errors.New("bad condition")
)

// Record is one object from the input document.
type Record map[string]any

// Load decodes a YAML document holding a list of objects. JSON input is
// accepted too, since JSON is valid YAML. An empty document yields no records.
func Load(r io.Reader) ([]Record, error) {
	var raw []map[string]any

	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}

		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %s", ErrNotAList, strings.Join(typeErr.Errors, "; "))
		}

		return nil, err
	}

	out := make([]Record, len(raw))
	for i, m := range raw {
		out[i] = Record(m)
	}

	return out, nil
}

// LoadFile loads path, or standard input when path is "-".
func LoadFile(path string, stdin io.Reader) ([]Record, error) {
	if path == "-" {
		return Load(stdin)
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	defer should.Close(f, "closing input")

	recs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// Field returns the value at a path such as "owner.name" or
// "$['build.version']". The second result is false when any step of the
// path is missing or the path is malformed.
func (r Record) Field(path string) (any, bool) {
	keys, err := jsonpath.Parse(path)
	if err != nil {
		return nil, false
	}

	return jsonpath.Lookup(r, keys)
}

// Project returns a record holding only the given paths, keyed by path.
// Missing paths are left out.
func (r Record) Project(paths []string) Record {
	out := make(Record, len(paths))

	for _, p := range paths {
		if v, ok := r.Field(p); ok {
			out[p] = v
		}
	}

	return out
}

// ParseValue interprets a command-line literal the way YAML would, so "3"
// is a number, "true" a boolean and "null" a null.
func ParseValue(literal string) any {
	if literal == "" {
		return ""
	}

	var v any
	if err := yaml.Unmarshal([]byte(literal), &v); err != nil {
		return literal
	}

	switch v.(type) {
	case map[string]any, []any:
		// "{a: 1}" and "[x]" are more likely meant as plain text.
		return literal
	default:
		return v
	}
}
