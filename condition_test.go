package apicalypse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCondition_Scalar(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		value any
		op    Operator
		want  string
	}{
		{"greater than int", "rating", 90, GreaterThan, "rating > 90"},
		{"equals string", "name", "zelda", Equals, `name = "zelda"`},
		{"not equals", "category", 0, NotEquals, "category != 0"},
		{"less than float", "rating", 79.5, LessThan, "rating < 79.5"},
		{"gte", "hypes", 10, GreaterThanOrEquals, "hypes >= 10"},
		{"lte", "follows", 3, LessThanOrEquals, "follows <= 3"},
		{"bool renders as digit", "checksum", true, Equals, "checksum = 1"},
		{"dotted field", "release.date", "2023-01-01", LessThan, `release.date < "2023-01-01"`},
		{"field trimmed", "  rating ", 90, GreaterThan, "rating > 90"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildCondition(tc.field, tc.value, tc.op)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildCondition_Array(t *testing.T) {
	testCases := []struct {
		name  string
		op    Operator
		want  string
	}{
		{"contains all", ContainsAll, "platforms = [6,48]"},
		{"not contains all", NotContainsAll, "platforms = ![6,48]"},
		{"contains any", ContainsAny, "platforms = (6,48)"},
		{"not contains any", NotContainsAny, "platforms = !(6,48)"},
		{"contains exactly", ContainsExactly, "platforms = {6,48}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildCondition("platforms", []int{6, 48}, tc.op)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildCondition_ArrayOfStrings(t *testing.T) {
	got, err := BuildCondition("genres.name", []string{"RPG", `say "hi"`}, ContainsAny)
	require.NoError(t, err)
	assert.Equal(t, `genres.name = ("RPG","say \"hi\"")`, got)
}

func TestBuildCondition_BlankField(t *testing.T) {
	_, err := BuildCondition("  ", 1, Equals)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildCondition_BlankStringValue(t *testing.T) {
	_, err := BuildCondition("name", "   ", Equals)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildCondition_CollectionOnScalarOperator(t *testing.T) {
	_, err := BuildCondition("platforms", []int{6, 48}, Equals)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildCondition_ScalarOnArrayOperator(t *testing.T) {
	_, err := BuildCondition("platforms", 6, ContainsAny)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildCondition_EmptyCollection(t *testing.T) {
	_, err := BuildCondition("platforms", []int{}, ContainsAny)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildCondition_NestedCollection(t *testing.T) {
	_, err := BuildCondition("platforms", []any{6, []int{48}}, ContainsAny)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildCondition_UnknownOperator(t *testing.T) {
	_, err := BuildCondition("rating", 90, Operator(99))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestMustCondition(t *testing.T) {
	assert.Equal(t, "rating > 90", MustCondition("rating", 90, GreaterThan))

	assert.Panics(t, func() {
		MustCondition("", 90, GreaterThan)
	})
}

func TestRenderWhere_Empty(t *testing.T) {
	got, err := renderWhere(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRenderWhere_SingleCondition(t *testing.T) {
	got, err := renderWhere([]condition{
		{logic: logicNone, clause: "rating > 80"},
	})
	require.NoError(t, err)
	assert.Equal(t, "where rating > 80;", got)
}

func TestRenderWhere_MixedChain(t *testing.T) {
	got, err := renderWhere([]condition{
		{logic: logicNone, clause: "rating > 80"},
		{logic: logicAnd, clause: "platforms = (6,48)"},
		{logic: logicOr, clause: `(release.date < "2023-01-01")`},
	})
	require.NoError(t, err)
	assert.Equal(t, `where rating > 80 & platforms = (6,48) | (release.date < "2023-01-01");`, got)
}

func TestRenderWhere_CorruptFirstOperator(t *testing.T) {
	_, err := renderWhere([]condition{
		{logic: logicAnd, clause: "rating > 80"},
	})
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.Contains(t, err.Error(), string(ErrCodeCorruptOperator))
}

func TestRenderWhere_CorruptLaterOperator(t *testing.T) {
	_, err := renderWhere([]condition{
		{logic: logicNone, clause: "rating > 80"},
		{logic: logicalOperator(7), clause: "hypes > 10"},
	})
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.Contains(t, err.Error(), "logicalOperator(7)")
}
