// Package apicalypse assembles textual queries for Apicalypse-style HTTP
// APIs from a fluent sequence of calls.
//
// A query is a mutable value accumulated through chained mutators and
// serialized into a single string of ordered clauses:
//
//	fields name,rating; where rating > 80; sort rating desc; limit 10;
//
// GRAMMAR:
//
// The rendered string is composed of clause segments, each terminated by
// ";" and joined by a single space, always in this order:
//
//	fields <f1>,<f2>,...;
//	exclude <f1>,<f2>,...;
//	where <cond1> [& <cond2> | <cond3> ...];
//	sort <f1> <asc|desc>,...;
//	limit <positive integer>;
//	offset <non-negative integer>;
//	search "<escaped term>";
//
// A clause appears only when its backing state is set. An empty query
// renders to the empty string.
//
// CLOSED VOCABULARIES:
//
// Comparison operators, logical operators, and sort directions are closed
// enum vocabularies with an exhaustive mapping to their literal grammar
// tokens. Unknown names are rejected at the boundary (ParseOperator,
// ParseSortDirection); an unknown tag reached during rendering is treated
// as state corruption and fails with a StateError.
//
// ERROR MODEL:
//
// Mutators validate before touching state, so a failing call never leaves
// a partial mutation behind. The first failure is recorded on the query:
// later mutators become no-ops, Err returns it, and Render propagates it.
// String is the fail-soft conversion: in lenient mode it logs the failure
// and returns a fixed fallback; in strict mode it propagates by panicking.
// Callers that want an error value use Render directly.
//
// Example:
//
//	q := apicalypse.New().
//		Fields("name", "rating").
//		Where("rating > 80").
//		AndWhere(apicalypse.MustCondition("platforms", []int{6, 48}, apicalypse.ContainsAny)).
//		SortDesc("rating").
//		Limit(10)
//	s, err := q.Render()
//
// The package only produces a string. It never sends requests, parses
// responses, or validates field names against a real API schema.
package apicalypse
