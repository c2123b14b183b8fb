package records

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/amp-labs/amp-query/compare"
)

// Kinds in ascending sort order. Values of different kinds never compare
// equal.
const (
	kindMissing = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindOther
)

func kindOf(v any, present bool) int {
	if !present {
		return kindMissing
	}

	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case string:
		return kindString
	default:
		if _, ok := Number(v); ok {
			return kindNumber
		}

		return kindOther
	}
}

// Number reports whether v is a decoded number and returns it as a float64.
// YAML yields int, int64, uint64 or float64 depending on magnitude.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// CompareValues orders two field values. Missing sorts first, then null,
// booleans, numbers and strings. Numbers compare numerically whatever
// their decoded Go type, and strings compare in natural order so "v2"
// sorts before "v10".
func CompareValues(a any, aPresent bool, b any, bPresent bool) int {
	ka, kb := kindOf(a, aPresent), kindOf(b, bPresent)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}

	switch ka {
	case kindBool:
		x, y := a.(bool), b.(bool) //nolint:forcetypeassert
		if x == y {
			return 0
		}

		if !x {
			return -1
		}

		return 1
	case kindNumber:
		x, _ := Number(a)
		y, _ := Number(b)

		return cmp.Compare(x, y)
	case kindString:
		return compare.Natural(a.(string), b.(string)) //nolint:forcetypeassert
	case kindOther:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	default:
		return 0
	}
}

// ByField returns a comparator ordering records by the value at path.
func ByField(path string) compare.Comparator[Record] {
	return func(a, b Record) int {
		av, aok := a.Field(path)
		bv, bok := b.Field(path)

		return CompareValues(av, aok, bv, bok)
	}
}

// KeyOf returns a selector producing a comparable identity for the value
// at path, so that records can be grouped or deduplicated by it. Numbers
// with the same value share a key regardless of their decoded type.
func KeyOf(path string) func(Record) string {
	return func(r Record) string {
		v, ok := r.Field(path)
		if !ok {
			return "missing"
		}

		switch kindOf(v, true) {
		case kindNull:
			return "null"
		case kindNumber:
			n, _ := Number(v)

			return "n:" + strconv.FormatFloat(n, 'g', -1, 64)
		case kindString:
			return "s:" + v.(string) //nolint:forcetypeassert
		default:
			return fmt.Sprintf("%T:%v", v, v)
		}
	}
}
