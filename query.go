package apicalypse

import (
	"log/slog"
	"slices"
)

// Query accumulates clause state for one Apicalypse query.
//
// Every mutator validates its input first and only touches state when
// validation passes, then returns the same instance for chaining. The
// first failure is recorded: later mutators become no-ops and Render
// returns it. Use Err to inspect the recorded failure mid-chain.
//
// A Query is not safe for concurrent use; callers own synchronization.
type Query struct {
	fields     []string
	exclusions []string
	conditions []condition
	sorts      []string
	limit      *int
	offset     *int
	search     string

	strict bool
	logger *slog.Logger
	err    error
}

// New creates an empty query in lenient mode: String masks render
// failures behind a fixed fallback and logs them.
func New() *Query {
	return &Query{logger: slog.Default()}
}

// NewStrict creates an empty query in strict mode: String propagates
// render failures instead of masking them.
func NewStrict() *Query {
	q := New()
	q.strict = true
	return q
}

// WithLogger replaces the logger used by the fail-soft String conversion.
// A nil logger is ignored.
func (q *Query) WithLogger(logger *slog.Logger) *Query {
	if logger != nil {
		q.logger = logger
	}
	return q
}

// Err returns the first error recorded by a mutator, if any.
func (q *Query) Err() error {
	return q.err
}

// fail records the first error. Later mutators observe it and no-op.
func (q *Query) fail(err error) *Query {
	if q.err == nil {
		q.err = err
	}
	return q
}

// Fields replaces the field selection. The list must be non-empty and
// every entry a valid dotted path; the single entry Wildcard ("*") is
// stored verbatim and selects everything. Duplicates are kept as given.
func (q *Query) Fields(fields ...string) *Query {
	if q.err != nil {
		return q
	}
	validated, err := validateFieldList("fields", fields)
	if err != nil {
		return q.fail(err)
	}
	q.fields = validated
	return q
}

// AddFields validates the given fields and unions them with the current
// selection, preserving order of first occurrence and dropping
// duplicates. A stored wildcard selection is replaced by the union.
func (q *Query) AddFields(fields ...string) *Query {
	if q.err != nil {
		return q
	}
	validated, err := validateFieldList("fields", fields)
	if err != nil {
		return q.fail(err)
	}
	q.fields = unionFields(q.fields, validated)
	return q
}

// Exclude unions the given fields into the exclusion list. There is no
// replace form; repeated calls accumulate with order-preserving dedup.
func (q *Query) Exclude(fields ...string) *Query {
	if q.err != nil {
		return q
	}
	validated, err := validateFieldList("exclude", fields)
	if err != nil {
		return q.fail(err)
	}
	q.exclusions = unionFields(q.exclusions, validated)
	return q
}

// FieldList returns a copy of the current field selection.
func (q *Query) FieldList() []string {
	return slices.Clone(q.fields)
}

// ExclusionList returns a copy of the current exclusion list.
func (q *Query) ExclusionList() []string {
	return slices.Clone(q.exclusions)
}

// Where sets the initial condition of the where chain. Fails with a
// StateError if a condition already exists.
func (q *Query) Where(cond string) *Query {
	if q.err != nil {
		return q
	}
	trimmed, err := validateNonBlank("condition", cond)
	if err != nil {
		return q.fail(err)
	}
	if len(q.conditions) > 0 {
		return q.fail(newStateError(ErrCodeInitialAlreadySet, "initial condition already set"))
	}
	q.conditions = append(q.conditions, condition{logic: logicNone, clause: trimmed})
	return q
}

// AndWhere appends a condition joined with AND. On an empty chain it
// behaves exactly like Where: AND never requires a prior condition.
func (q *Query) AndWhere(cond string) *Query {
	if q.err != nil {
		return q
	}
	trimmed, err := validateNonBlank("condition", cond)
	if err != nil {
		return q.fail(err)
	}
	logic := logicAnd
	if len(q.conditions) == 0 {
		logic = logicNone
	}
	q.conditions = append(q.conditions, condition{logic: logic, clause: trimmed})
	return q
}

// OrWhere appends a condition joined with OR. Fails with a StateError on
// an empty chain: a where clause cannot start with OR.
func (q *Query) OrWhere(cond string) *Query {
	if q.err != nil {
		return q
	}
	trimmed, err := validateNonBlank("condition", cond)
	if err != nil {
		return q.fail(err)
	}
	if len(q.conditions) == 0 {
		return q.fail(newStateError(ErrCodeOrWithoutCondition, "cannot start a condition chain with OR"))
	}
	q.conditions = append(q.conditions, condition{logic: logicOr, clause: trimmed})
	return q
}

// Sort appends an ascending sort token for the field. Repeated calls
// accumulate; there is no replace form and no dedup.
func (q *Query) Sort(field string) *Query {
	return q.SortDir(field, Ascending)
}

// SortDesc appends a descending sort token for the field.
func (q *Query) SortDesc(field string) *Query {
	return q.SortDir(field, Descending)
}

// SortDir appends a sort token with an explicit direction.
func (q *Query) SortDir(field string, direction SortDirection) *Query {
	if q.err != nil {
		return q
	}
	trimmed, err := validateNonBlank("sort field", field)
	if err != nil {
		return q.fail(err)
	}
	if !direction.valid() {
		return q.fail(newValidationError("sort direction", "unknown direction %d", int(direction)))
	}
	q.sorts = append(q.sorts, trimmed+" "+direction.Token())
	return q
}

// Limit sets the row limit. Fails with a ValidationError unless n > 0.
func (q *Query) Limit(n int) *Query {
	if q.err != nil {
		return q
	}
	if n <= 0 {
		return q.fail(newValidationError("limit", "must be positive, got %d", n))
	}
	q.limit = &n
	return q
}

// Offset sets the row offset. Fails with a ValidationError unless n >= 0.
// Zero is a valid, renderable offset, distinguished from unset.
func (q *Query) Offset(n int) *Query {
	if q.err != nil {
		return q
	}
	if n < 0 {
		return q.fail(newValidationError("offset", "must be non-negative, got %d", n))
	}
	q.offset = &n
	return q
}

// Search stores the trimmed search term. Fails with a ValidationError when
// the term is blank.
func (q *Query) Search(term string) *Query {
	if q.err != nil {
		return q
	}
	trimmed, err := validateNonBlank("search term", term)
	if err != nil {
		return q.fail(err)
	}
	q.search = trimmed
	return q
}

// Reset restores every clause slot to its construction state and clears
// any recorded error. Strict mode and the logger are configuration, not
// query state, and survive a reset.
func (q *Query) Reset() *Query {
	q.fields = nil
	q.exclusions = nil
	q.conditions = nil
	q.sorts = nil
	q.limit = nil
	q.offset = nil
	q.search = ""
	q.err = nil
	return q
}
