package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormURLEncoded(t *testing.T) {
	sp := NewSearchParams("a=1&b=2;c=3")
	assert.Equal(t, 3, sp.Size())
	v, ok := sp.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	v, ok = sp.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestParseFormURLEncodedDecoding(t *testing.T) {
	sp := NewSearchParams("a+b=c%20d&no-value&empty=")
	v, ok := sp.Get("a b")
	assert.True(t, ok)
	assert.Equal(t, "c d", v)
	v, ok = sp.Get("no-value")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	v, ok = sp.Get("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestSearchParamsStringEncodesSpacesAsPlus(t *testing.T) {
	sp := NewSearchParams("")
	sp.Append("a b", "c+d")
	assert.Equal(t, "a+b=c%2Bd", sp.String())

	// a '+' in the serialized form decodes back to the space it encoded,
	// and the literal '+' survives as its %2B triplet.
	back := NewSearchParams(sp.String())
	v, ok := back.Get("a b")
	assert.True(t, ok)
	assert.Equal(t, "c+d", v)
}

func TestSearchParamsAppendGetAll(t *testing.T) {
	sp := NewSearchParams("")
	sp.Append("k", "1")
	sp.Append("k", "2")
	sp.Append("other", "x")
	assert.Equal(t, []string{"1", "2"}, sp.GetAll("k"))
	assert.True(t, sp.Has("k"))
	assert.True(t, sp.Has("k", "2"))
	assert.False(t, sp.Has("k", "3"))
	assert.False(t, sp.Has("missing"))
}

func TestSearchParamsSetReplacesFirstRemovesRest(t *testing.T) {
	sp := NewSearchParams("a=1&k=1&b=2&k=2")
	sp.Set("k", "9")
	assert.Equal(t, []SearchParam{
		{"a", "1"}, {"k", "9"}, {"b", "2"},
	}, sp.Entries())

	sp.Set("new", "v")
	assert.Equal(t, "v", sp.Entries()[3].Value)
}

func TestSearchParamsDelete(t *testing.T) {
	sp := NewSearchParams("k=1&a=2&k=3")
	sp.Delete("k")
	assert.Equal(t, []SearchParam{{"a", "2"}}, sp.Entries())

	sp = NewSearchParams("k=1&k=2&k=3")
	sp.Delete("k", "2")
	assert.Equal(t, []SearchParam{{"k", "1"}, {"k", "3"}}, sp.Entries())
}

func TestSearchParamsSortIsStable(t *testing.T) {
	sp := NewSearchParams("b=1&a=x&b=2&a=y")
	sp.Sort()
	assert.Equal(t, []SearchParam{
		{"a", "x"}, {"a", "y"}, {"b", "1"}, {"b", "2"},
	}, sp.Entries())
}

func TestSearchParamsLiveBinding(t *testing.T) {
	u, err := Parse("https://example.org/?a=1")
	require.NoError(t, err)

	sp := u.SearchParams()
	sp.Append("b", "2")
	assert.Equal(t, "?a=1&b=2", u.Search())

	sp.Set("a", "9")
	assert.Equal(t, "?a=9&b=2", u.Search())

	sp.Delete("a")
	sp.Delete("b")
	assert.Equal(t, "", u.Search())
	assert.Nil(t, u.Query)
}

func TestSearchParamsClear(t *testing.T) {
	u, err := Parse("https://example.org/?a=1&b=2")
	require.NoError(t, err)

	sp := u.SearchParams()
	sp.Clear()
	assert.Equal(t, 0, sp.Size())
	assert.True(t, sp.IsZero())
	assert.Nil(t, u.Query)
	assert.Equal(t, "https://example.org/", u.String())
}

func TestSearchParamsCloneDetaches(t *testing.T) {
	u, err := Parse("https://example.org/?a=1")
	require.NoError(t, err)

	c := u.SearchParams().Clone()
	c.Append("b", "2")

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, "?a=1", u.Search())
	assert.False(t, c.IsZero())

	var nilSP *SearchParams
	assert.True(t, nilSP.IsZero())
}

func TestSearchParamsReseedsFromQuery(t *testing.T) {
	u, err := Parse("https://example.org/?a=1")
	require.NoError(t, err)
	require.NoError(t, u.SetSearch("z=26"))

	sp := u.SearchParams()
	v, ok := sp.Get("z")
	assert.True(t, ok)
	assert.Equal(t, "26", v)
	assert.False(t, sp.Has("a"))
}
