package apicalypse

import (
	"fmt"
	"strings"
)

// Operator is a comparison operator inside a condition.
//
// This is a closed vocabulary: the scalar operators map to literal tokens
// (=, !=, >, >=, <, <=) and the array operators map to a bracket wrapping
// around the rendered collection (see BuildCondition). Unknown values are
// rejected at the boundary rather than carried as open strings.
type Operator int

const (
	// Equals is the default comparison: field = value.
	Equals Operator = iota
	NotEquals
	GreaterThan
	GreaterThanOrEquals
	LessThan
	LessThanOrEquals

	// ContainsAll matches rows whose array field contains every listed
	// element: field = [a,b].
	ContainsAll
	// NotContainsAll negates ContainsAll: field = ![a,b].
	NotContainsAll
	// ContainsAny matches rows whose array field contains at least one
	// listed element: field = (a,b).
	ContainsAny
	// NotContainsAny negates ContainsAny: field = !(a,b).
	NotContainsAny
	// ContainsExactly matches rows whose array field equals the listed
	// elements: field = {a,b}.
	ContainsExactly
)

// scalarToken returns the literal grammar token for a scalar operator.
func (op Operator) scalarToken() (string, bool) {
	switch op {
	case Equals:
		return "=", true
	case NotEquals:
		return "!=", true
	case GreaterThan:
		return ">", true
	case GreaterThanOrEquals:
		return ">=", true
	case LessThan:
		return "<", true
	case LessThanOrEquals:
		return "<=", true
	}
	return "", false
}

// arrayBrackets returns the wrapping tokens for an array operator.
func (op Operator) arrayBrackets() (open, closing string, ok bool) {
	switch op {
	case ContainsAll:
		return "[", "]", true
	case NotContainsAll:
		return "![", "]", true
	case ContainsAny:
		return "(", ")", true
	case NotContainsAny:
		return "!(", ")", true
	case ContainsExactly:
		return "{", "}", true
	}
	return "", "", false
}

// IsArray reports whether the operator takes a collection value.
func (op Operator) IsArray() bool {
	_, _, ok := op.arrayBrackets()
	return ok
}

// String returns the stable operator name used in query definitions and
// error messages.
func (op Operator) String() string {
	switch op {
	case Equals:
		return "eq"
	case NotEquals:
		return "ne"
	case GreaterThan:
		return "gt"
	case GreaterThanOrEquals:
		return "gte"
	case LessThan:
		return "lt"
	case LessThanOrEquals:
		return "lte"
	case ContainsAll:
		return "contains_all"
	case NotContainsAll:
		return "not_contains_all"
	case ContainsAny:
		return "contains_any"
	case NotContainsAny:
		return "not_contains_any"
	case ContainsExactly:
		return "contains_exactly"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// operatorNames maps definition-file spellings to operators. Both the
// short names and the literal scalar tokens are accepted.
var operatorNames = map[string]Operator{
	"eq":               Equals,
	"=":                Equals,
	"ne":               NotEquals,
	"neq":              NotEquals,
	"!=":               NotEquals,
	"gt":               GreaterThan,
	">":                GreaterThan,
	"gte":              GreaterThanOrEquals,
	">=":               GreaterThanOrEquals,
	"lt":               LessThan,
	"<":                LessThan,
	"lte":              LessThanOrEquals,
	"<=":               LessThanOrEquals,
	"contains_all":     ContainsAll,
	"not_contains_all": NotContainsAll,
	"contains_any":     ContainsAny,
	"not_contains_any": NotContainsAny,
	"contains_exactly": ContainsExactly,
}

// ParseOperator resolves an operator name from a query definition.
// Unknown names are rejected with a ValidationError.
func ParseOperator(name string) (Operator, error) {
	op, ok := operatorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, newValidationError("operator", "unknown operator %q", name)
	}
	return op, nil
}

// logicalOperator joins a condition to the one before it in the chain.
// The first condition of a chain carries logicNone; every later condition
// carries logicAnd or logicOr, never logicNone.
type logicalOperator int

const (
	logicNone logicalOperator = iota
	logicAnd
	logicOr
)

// String returns the operator name for diagnostics.
func (l logicalOperator) String() string {
	switch l {
	case logicNone:
		return "none"
	case logicAnd:
		return "and"
	case logicOr:
		return "or"
	}
	return fmt.Sprintf("logicalOperator(%d)", int(l))
}

// SortDirection orders a sort clause. Closed vocabulary: Ascending and
// Descending, mapping to the literal tokens "asc" and "desc".
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Token returns the literal grammar token for the direction.
func (d SortDirection) Token() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return ""
}

// valid reports whether the direction is a known vocabulary member.
func (d SortDirection) valid() bool {
	return d == Ascending || d == Descending
}

// String returns the grammar token, or a diagnostic form for unknown tags.
func (d SortDirection) String() string {
	if t := d.Token(); t != "" {
		return t
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}

// ParseSortDirection resolves a direction name from a query definition.
// Accepts "asc"/"ascending" and "desc"/"descending"; the empty string
// defaults to Ascending.
func ParseSortDirection(name string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return 0, newValidationError("sort direction", "unknown direction %q", name)
}
