package apicalypse

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden files pin the exact wire-level output other systems depend on.
// Regenerate with: go test . -update

func TestGolden_FullQuery(t *testing.T) {
	q := New().
		Fields("name", "rating", "release.date").
		Exclude("summary").
		Where("rating > 80").
		AndWhere(MustCondition("platforms", []int{6, 48}, ContainsAny)).
		SortDesc("rating").
		Sort("name").
		Limit(10).
		Offset(20).
		Search(`zel"da`)

	s, err := q.Render()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "full_query", []byte(s))
}

func TestGolden_WildcardWithSearch(t *testing.T) {
	q := New().
		Fields("*").
		Limit(50).
		Search("witcher")

	s, err := q.Render()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "wildcard_search", []byte(s))
}

func TestGolden_ConditionChain(t *testing.T) {
	q := New().
		Where("rating > 80").
		AndWhere(MustCondition("genres.name", []string{"RPG", "Adventure"}, ContainsAll)).
		OrWhere(`(release.date < "2023-01-01")`)

	s, err := q.Render()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "condition_chain", []byte(s))
}
