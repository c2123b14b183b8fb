package records

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-query/jsonpath"
)

// Condition is a parsed --where expression such as "age>=18".
type Condition struct {
	Path  string
	Op    string
	Value any
}

// Longer operators first so that ">=" is not read as ">".
var operators = []string{"!=", "<=", ">=", "=", "<", ">"} //nolint:gochecknoglobals

// ParseCondition parses "path OP value" where OP is one of = != < <= > >=.
// The value is interpreted with ParseValue. Operator characters inside a
// leading bracket path such as $['a=b'] belong to the path.
func ParseCondition(expr string) (Condition, error) {
	for i := jsonpath.PrefixLen(expr); i < len(expr); i++ {
		for _, op := range operators {
			if !strings.HasPrefix(expr[i:], op) {
				continue
			}

			path := strings.TrimSpace(expr[:i])
			if path == "" {
				return Condition{}, fmt.Errorf("%w: %q has no field", ErrBadCondition, expr)
			}

			if err := jsonpath.Validate(path); err != nil {
				return Condition{}, fmt.Errorf("%w: %w", ErrBadCondition, err)
			}

			return Condition{
				Path:  path,
				Op:    op,
				Value: ParseValue(strings.TrimSpace(expr[i+len(op):])),
			}, nil
		}
	}

	return Condition{}, fmt.Errorf("%w: %q has no operator", ErrBadCondition, expr)
}

// Match reports whether r satisfies the condition. A record missing the
// field only satisfies "!=".
func (c Condition) Match(r Record) bool {
	v, ok := r.Field(c.Path)
	if !ok {
		return c.Op == "!="
	}

	n := CompareValues(v, true, c.Value, true)

	switch c.Op {
	case "=":
		return n == 0
	case "!=":
		return n != 0
	case "<":
		return n < 0
	case "<=":
		return n <= 0
	case ">":
		return n > 0
	case ">=":
		return n >= 0
	default:
		return false
	}
}

func (c Condition) String() string {
	return fmt.Sprintf("%s%s%v", c.Path, c.Op, c.Value)
}
