package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPredicates(t *testing.T) {
	u, err := Parse("https://u:p@example.com:8080/a")
	require.NoError(t, err)
	assert.True(t, u.IsSpecial())
	assert.False(t, u.HasOpaquePath())
	assert.True(t, u.IncludesCredentials())
	assert.True(t, u.HasHost())
	assert.False(t, u.IsZero())

	m, err := Parse("mailto:a@b")
	require.NoError(t, err)
	assert.False(t, m.IsSpecial())
	assert.True(t, m.HasOpaquePath())
	assert.False(t, m.IncludesCredentials())
	assert.False(t, m.HasHost())

	var zero URL
	assert.True(t, zero.IsZero())
}

func TestRecordPortOrDefault(t *testing.T) {
	u, err := Parse("http://example.com/")
	require.NoError(t, err)
	p, ok := u.PortOrDefault()
	assert.True(t, ok)
	assert.Equal(t, 80, p)

	u, err = Parse("http://example.com:8080/")
	require.NoError(t, err)
	p, ok = u.PortOrDefault()
	assert.True(t, ok)
	assert.Equal(t, 8080, p)

	u, err = Parse("file:///tmp")
	require.NoError(t, err)
	_, ok = u.PortOrDefault()
	assert.False(t, ok)
}

func TestRecordCloneDeepCopies(t *testing.T) {
	u, err := Parse("https://example.com:8080/a/b?q=1#f")
	require.NoError(t, err)

	c := u.Clone()
	c.Path[0] = "mutated"
	*c.Port = 9
	*c.Query = "changed"
	*c.Fragment = "changed"

	assert.Equal(t, "a", u.Path[0])
	assert.Equal(t, 8080, *u.Port)
	assert.Equal(t, "q=1", *u.Query)
	assert.Equal(t, "f", *u.Fragment)
}

func TestRecordInvariants(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/",
		"http://u:p@example.com:8080/x",
		"file:///C:/demo",
		"mailto:someone@example.com",
		"git://opaque.host/x",
	} {
		u, err := Parse(raw)
		require.NoError(t, err, raw)

		// scheme is non-empty lowercase ASCII starting with a letter.
		require.NotEmpty(t, u.Scheme, raw)
		assert.Equal(t, lc(u.Scheme), u.Scheme, raw)
		assert.True(t, isASCIIAlpha(rune(u.Scheme[0])), raw)

		// a special scheme other than file always carries a host.
		if u.IsSpecial() && u.Scheme != "file" {
			assert.True(t, u.HasHost(), raw)
			assert.NotEqual(t, HostEmpty, u.Host.Kind, raw)
		}

		// opaque paths are a single element with no host.
		if u.CannotBeABaseURL {
			assert.Len(t, u.Path, 1, raw)
			assert.False(t, u.HasHost(), raw)
		}

		// a stored port never equals the scheme default.
		if u.Port != nil {
			if def, ok := defaultPortForScheme(u.Scheme); ok {
				assert.NotEqual(t, def, *u.Port, raw)
			}
		}
	}
}
