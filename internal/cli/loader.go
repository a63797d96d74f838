package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/apicalypse"
)

// Error codes for definition loading.
const (
	ErrCodeNotFound    = "NOT_FOUND"    // definition file missing or unreadable
	ErrCodeParseFailed = "PARSE_FAILED" // YAML did not parse against the schema
	ErrCodeEmpty       = "EMPTY"        // definition carries no clause at all
	ErrCodeValidation  = "VALIDATION"   // library rejected the definition's values
	ErrCodeGeneric     = "GENERIC"
)

// LoadError represents an error that occurred during definition loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Definition is the YAML query-definition schema.
//
// Example:
//
//	fields: [name, rating]
//	exclude: [summary]
//	where:
//	  - condition: "rating > 80"
//	  - logic: or
//	    field: platforms
//	    operator: contains_any
//	    value: [6, 48]
//	sort:
//	  - field: rating
//	    direction: desc
//	limit: 10
//	offset: 20
//	search: zelda
type Definition struct {
	Fields  []string    `yaml:"fields,omitempty"`
	Exclude []string    `yaml:"exclude,omitempty"`
	Where   []WhereStep `yaml:"where,omitempty"`
	Sort    []SortStep  `yaml:"sort,omitempty"`
	Limit   *int        `yaml:"limit,omitempty"`
	Offset  *int        `yaml:"offset,omitempty"`
	Search  string      `yaml:"search,omitempty"`
}

// WhereStep is one entry of the where chain. Either Condition carries raw
// clause text, or Field/Operator/Value describe a comparison built through
// the library. Logic joins the step to the previous one: "and" (default)
// or "or". The first step always starts the chain.
type WhereStep struct {
	Logic     string `yaml:"logic,omitempty"`
	Condition string `yaml:"condition,omitempty"`
	Field     string `yaml:"field,omitempty"`
	Operator  string `yaml:"operator,omitempty"` // default: eq
	Value     any    `yaml:"value,omitempty"`
}

// SortStep is one entry of the sort clause. Direction defaults to asc.
type SortStep struct {
	Field     string `yaml:"field"`
	Direction string `yaml:"direction,omitempty"`
}

// IsEmpty reports whether the definition carries no clause at all.
func (d *Definition) IsEmpty() bool {
	return len(d.Fields) == 0 &&
		len(d.Exclude) == 0 &&
		len(d.Where) == 0 &&
		len(d.Sort) == 0 &&
		d.Limit == nil &&
		d.Offset == nil &&
		d.Search == ""
}

// LoadDefinition reads and parses a YAML query definition.
// Unknown YAML keys are rejected so typos surface as load errors instead
// of silently dropped clauses.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("definition file not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading definition file: %v", err)}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Code: ErrCodeEmpty, Message: fmt.Sprintf("definition file is empty: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing %s: %v", path, err)}
	}

	if def.IsEmpty() {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: fmt.Sprintf("definition carries no clauses: %s", path)}
	}

	return &def, nil
}

// Assemble builds a query from the definition through the library's
// fluent mutators. The first error the library records is returned; the
// rendered string is what callers print or write.
func Assemble(def *Definition, strict bool) (*apicalypse.Query, error) {
	q := apicalypse.New()
	if strict {
		q = apicalypse.NewStrict()
	}

	if len(def.Fields) > 0 {
		q.Fields(def.Fields...)
	}
	if len(def.Exclude) > 0 {
		q.Exclude(def.Exclude...)
	}

	for i, step := range def.Where {
		clause, err := resolveClause(step)
		if err != nil {
			return nil, fmt.Errorf("where step %d: %w", i, err)
		}
		switch step.Logic {
		case "", "and":
			q.AndWhere(clause)
		case "or":
			q.OrWhere(clause)
		default:
			return nil, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("where step %d: unknown logic %q", i, step.Logic)}
		}
	}

	for i, step := range def.Sort {
		dir, err := apicalypse.ParseSortDirection(step.Direction)
		if err != nil {
			return nil, fmt.Errorf("sort step %d: %w", i, err)
		}
		q.SortDir(step.Field, dir)
	}

	if def.Limit != nil {
		q.Limit(*def.Limit)
	}
	if def.Offset != nil {
		q.Offset(*def.Offset)
	}
	if def.Search != "" {
		q.Search(def.Search)
	}

	return q, q.Err()
}

// resolveClause turns one where step into clause text. Raw condition text
// wins; otherwise the field/operator/value triple goes through
// BuildCondition with the operator defaulting to equals.
func resolveClause(step WhereStep) (string, error) {
	if step.Condition != "" {
		if step.Field != "" || step.Operator != "" || step.Value != nil {
			return "", &LoadError{Code: ErrCodeParseFailed, Message: "condition text and field/operator/value are mutually exclusive"}
		}
		return step.Condition, nil
	}

	op := apicalypse.Equals
	if step.Operator != "" {
		parsed, err := apicalypse.ParseOperator(step.Operator)
		if err != nil {
			return "", err
		}
		op = parsed
	}
	// yaml.v3 decodes list values as []any of scalars, which the library
	// accepts directly.
	return apicalypse.BuildCondition(step.Field, step.Value, op)
}

// errorCode maps an error to the code reported in CLI output.
func errorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	var stateErr *apicalypse.StateError
	if errors.As(err, &stateErr) {
		return string(stateErr.Code)
	}
	if apicalypse.IsValidationError(err) {
		return ErrCodeValidation
	}
	return ErrCodeGeneric
}
