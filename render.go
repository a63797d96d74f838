package apicalypse

import (
	"strconv"
	"strings"
)

// renderFallback is returned by String when rendering fails in lenient
// mode. It is indistinguishable from an empty query by string comparison;
// use Err or Render to tell the two apart.
const renderFallback = ""

// Render serializes the accumulated state into the final query string.
//
// Clause segments appear in fixed order (fields, exclude, where, sort,
// limit, offset, search), each present only when its backing state is set,
// each terminated with ";" and joined by a single space. A query with no
// state renders to the empty string.
//
// Render returns the first error recorded by a mutator, or a StateError
// if the condition list is found corrupted while assembling the where
// clause.
func (q *Query) Render() (string, error) {
	if q.err != nil {
		return "", q.err
	}

	var clauses []string
	if len(q.fields) > 0 {
		clauses = append(clauses, "fields "+strings.Join(q.fields, ",")+";")
	}
	if len(q.exclusions) > 0 {
		clauses = append(clauses, "exclude "+strings.Join(q.exclusions, ",")+";")
	}

	where, err := renderWhere(q.conditions)
	if err != nil {
		return "", err
	}
	if where != "" {
		clauses = append(clauses, where)
	}

	if len(q.sorts) > 0 {
		clauses = append(clauses, "sort "+strings.Join(q.sorts, ",")+";")
	}
	if q.limit != nil {
		clauses = append(clauses, "limit "+strconv.Itoa(*q.limit)+";")
	}
	if q.offset != nil {
		clauses = append(clauses, "offset "+strconv.Itoa(*q.offset)+";")
	}
	if q.search != "" {
		clauses = append(clauses, "search "+quoteString(q.search)+";")
	}

	return strings.Join(clauses, " "), nil
}

// String implements fmt.Stringer as the fail-soft conversion around
// Render. On success it returns the rendered query. On failure, strict
// mode propagates by panicking with the error; lenient mode records the
// failure through the logger and returns renderFallback, masking the
// error from callers that only consume a string.
func (q *Query) String() string {
	s, err := q.Render()
	if err == nil {
		return s
	}
	if q.strict {
		panic(err)
	}
	q.logger.Error("apicalypse query render failed", "error", err)
	return renderFallback
}
