package apicalypse

import (
	"reflect"
	"strconv"
	"strings"
)

// stringEscaper rewrites backslash before quote so newly inserted
// backslashes are not escaped a second time.
var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteString renders a string value per the grammar: wrapped in double
// quotes with `\` escaped as `\\` and `"` as `\"`.
func quoteString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// formatScalar renders a single scalar value to its grammar token.
// Booleans render as 1/0, numbers as plain decimals without quoting, and
// strings quoted via quoteString. Anything else is non-scalar and fails
// with a ValidationError.
func formatScalar(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(val), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case string:
		return quoteString(val), nil
	}
	return "", newValidationError("value", "non-scalar value of type %T", v)
}

// formatList renders an ordered collection of scalars joined with commas.
// The collection must be a non-empty slice or array whose elements are all
// scalar; a nested collection or structured element fails with a
// ValidationError.
func formatList(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return "", newValidationError("value", "expected a list of scalars, got %T", v)
	}
	if rv.Len() == 0 {
		return "", newValidationError("value", "empty list for array operator")
	}
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		s, err := formatScalar(elem)
		if err != nil {
			return "", newValidationError("value", "list element %d: non-scalar value of type %T", i, elem)
		}
		parts[i] = s
	}
	return strings.Join(parts, ","), nil
}
