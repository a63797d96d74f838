package apicalypse

import "strings"

// condition pairs a clause with the logical operator joining it to the
// previous one. The first condition in a chain carries logicNone; every
// later one carries logicAnd or logicOr.
type condition struct {
	logic  logicalOperator
	clause string
}

// BuildCondition renders a single comparison clause for use with Where,
// AndWhere, or OrWhere. It is a pure function and never touches query
// state.
//
// For scalar operators the value must be a scalar and the output is
// "<field> <token> <value>":
//
//	BuildCondition("rating", 90, GreaterThan)  // "rating > 90"
//
// For array operators (ContainsAll, NotContainsAll, ContainsAny,
// NotContainsAny, ContainsExactly) the value must be a non-empty slice or
// array of scalars, rendered comma-joined inside the operator's brackets:
//
//	BuildCondition("platforms", []int{6, 48}, ContainsAny)  // "platforms = (6,48)"
//
// A blank field, an empty collection, a non-scalar element, a collection
// passed to a scalar operator, or a blank string value all fail with a
// ValidationError.
func BuildCondition(field string, value any, op Operator) (string, error) {
	trimmed, err := validateNonBlank("condition field", field)
	if err != nil {
		return "", err
	}

	if open, closing, ok := op.arrayBrackets(); ok {
		joined, err := formatList(value)
		if err != nil {
			return "", err
		}
		return trimmed + " = " + open + joined + closing, nil
	}

	token, ok := op.scalarToken()
	if !ok {
		return "", newValidationError("operator", "unknown operator %s", op)
	}
	if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
		return "", newValidationError("condition value", "blank string value")
	}
	formatted, err := formatScalar(value)
	if err != nil {
		return "", err
	}
	return trimmed + " " + token + " " + formatted, nil
}

// MustCondition is BuildCondition that panics on error. Intended for
// literal conditions inside fluent chains.
func MustCondition(field string, value any, op Operator) string {
	clause, err := BuildCondition(field, value, op)
	if err != nil {
		panic(err)
	}
	return clause
}

// renderWhere assembles the where clause from the ordered condition list.
// Returns "" when the list is empty. The first clause is emitted bare and
// each later clause is prefixed with "& " or "| " per its stored operator;
// any other tag is an internal-consistency fault and fails with a
// StateError naming the offending operator.
func renderWhere(conds []condition) (string, error) {
	if len(conds) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("where ")
	for i, c := range conds {
		if i == 0 {
			if c.logic != logicNone {
				return "", newStateError(ErrCodeCorruptOperator, "first condition carries operator %s", c.logic)
			}
			sb.WriteString(c.clause)
			continue
		}
		switch c.logic {
		case logicAnd:
			sb.WriteString(" & ")
		case logicOr:
			sb.WriteString(" | ")
		default:
			return "", newStateError(ErrCodeCorruptOperator, "condition %d carries operator %s", i, c.logic)
		}
		sb.WriteString(c.clause)
	}
	sb.WriteString(";")
	return sb.String(), nil
}
