package apicalypse

import "strings"

// Wildcard selects every field when passed as the sole argument to Fields.
const Wildcard = "*"

// validateNonBlank returns the trimmed value, failing when nothing remains.
func validateNonBlank(input, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", newValidationError(input, "blank value")
	}
	return trimmed, nil
}

// validateFieldPath checks a dotted field path such as "release.date".
// The whole path and every segment must be non-blank.
func validateFieldPath(input, field string) (string, error) {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return "", newValidationError(input, "blank field")
	}
	for _, segment := range strings.Split(trimmed, ".") {
		if strings.TrimSpace(segment) == "" {
			return "", newValidationError(input, "blank segment in field %q", trimmed)
		}
	}
	return trimmed, nil
}

// validateFieldList trims and validates a list of dotted field paths.
// A list of exactly [Wildcard] is stored verbatim and skips per-segment
// validation; it is mutually exclusive with named entries.
func validateFieldList(input string, fields []string) ([]string, error) {
	if len(fields) == 0 {
		return nil, newValidationError(input, "empty field list")
	}
	if len(fields) == 1 && strings.TrimSpace(fields[0]) == Wildcard {
		return []string{Wildcard}, nil
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		trimmed, err := validateFieldPath(input, f)
		if err != nil {
			return nil, err
		}
		out[i] = trimmed
	}
	return out, nil
}

// unionFields appends new entries preserving order of first occurrence and
// dropping duplicates. A stored wildcard selection is replaced rather than
// extended, keeping the wildcard mutually exclusive with named fields.
func unionFields(existing, add []string) []string {
	if len(existing) == 1 && existing[0] == Wildcard {
		existing = nil
	}
	seen := make(map[string]struct{}, len(existing)+len(add))
	out := make([]string, 0, len(existing)+len(add))
	for _, f := range existing {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	for _, f := range add {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
