package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/apicalypse"
)

func TestLoadDefinition_Full(t *testing.T) {
	def, err := LoadDefinition("testdata/full.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "rating", "release.date"}, def.Fields)
	assert.Equal(t, []string{"summary"}, def.Exclude)
	require.Len(t, def.Where, 3)
	assert.Equal(t, "rating > 80", def.Where[0].Condition)
	assert.Equal(t, "platforms", def.Where[1].Field)
	assert.Equal(t, "or", def.Where[2].Logic)
	require.Len(t, def.Sort, 1)
	assert.Equal(t, "desc", def.Sort[0].Direction)
	require.NotNil(t, def.Limit)
	assert.Equal(t, 10, *def.Limit)
	require.NotNil(t, def.Offset)
	assert.Equal(t, 20, *def.Offset)
	assert.Equal(t, "zelda", def.Search)
}

func TestLoadDefinition_NotFound(t *testing.T) {
	_, err := LoadDefinition("testdata/missing.yaml")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadDefinition_UnknownKeyRejected(t *testing.T) {
	_, err := LoadDefinition("testdata/unknown_key.yaml")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
	assert.Contains(t, loadErr.Message, "limmit")
}

func TestLoadDefinition_EmptyFile(t *testing.T) {
	_, err := LoadDefinition("testdata/empty.yaml")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeEmpty, loadErr.Code)
}

func TestAssemble_FullDefinition(t *testing.T) {
	def, err := LoadDefinition("testdata/full.yaml")
	require.NoError(t, err)

	query, err := Assemble(def, false)
	require.NoError(t, err)

	rendered, err := query.Render()
	require.NoError(t, err)
	assert.Equal(t,
		`fields name,rating,release.date; exclude summary; where rating > 80 & platforms = (6,48) | (release.date < "2023-01-01"); sort rating desc; limit 10; offset 20; search "zelda";`,
		rendered)
}

func TestAssemble_SearchOnly(t *testing.T) {
	def, err := LoadDefinition("testdata/search_only.yaml")
	require.NoError(t, err)

	query, err := Assemble(def, false)
	require.NoError(t, err)

	rendered, err := query.Render()
	require.NoError(t, err)
	assert.Equal(t, `search "witcher";`, rendered)
}

func TestAssemble_BadLimit(t *testing.T) {
	def, err := LoadDefinition("testdata/bad_limit.yaml")
	require.NoError(t, err)

	_, err = Assemble(def, false)
	require.Error(t, err)
	assert.True(t, apicalypse.IsValidationError(err))
	assert.Equal(t, ErrCodeValidation, errorCode(err))
}

func TestAssemble_OrFirst(t *testing.T) {
	def, err := LoadDefinition("testdata/or_first.yaml")
	require.NoError(t, err)

	_, err = Assemble(def, false)
	require.Error(t, err)
	assert.True(t, apicalypse.IsStateError(err))
	assert.Equal(t, string(apicalypse.ErrCodeOrWithoutCondition), errorCode(err))
}

func TestAssemble_UnknownOperator(t *testing.T) {
	def, err := LoadDefinition("testdata/unknown_operator.yaml")
	require.NoError(t, err)

	_, err = Assemble(def, false)
	require.Error(t, err)
	assert.True(t, apicalypse.IsValidationError(err))
	assert.Contains(t, err.Error(), "between")
}

func TestAssemble_DefaultOperatorIsEquals(t *testing.T) {
	def := &Definition{
		Where: []WhereStep{
			{Field: "name", Value: "zelda"},
		},
	}

	query, err := Assemble(def, false)
	require.NoError(t, err)

	rendered, err := query.Render()
	require.NoError(t, err)
	assert.Equal(t, `where name = "zelda";`, rendered)
}

func TestAssemble_MixedStepKindsRejected(t *testing.T) {
	def := &Definition{
		Where: []WhereStep{
			{Condition: "rating > 80", Field: "rating"},
		},
	}

	_, err := Assemble(def, false)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}

func TestAssemble_UnknownLogicRejected(t *testing.T) {
	def := &Definition{
		Where: []WhereStep{
			{Condition: "a = 1"},
			{Logic: "xor", Condition: "b = 2"},
		},
	}

	_, err := Assemble(def, false)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "xor")
}
