package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialSchemes(t *testing.T) {
	cases := []struct {
		scheme string
		port   int
		ok     bool
	}{
		{"http", 80, true},
		{"https", 443, true},
		{"ws", 80, true},
		{"wss", 443, true},
		{"ftp", 21, true},
		{"file", 0, false},
		{"gopher", 0, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, isSpecialScheme(c.scheme) && defaultPortOK(c.scheme), c.scheme)
		if c.ok {
			p, ok := defaultPortForScheme(c.scheme)
			assert.True(t, ok)
			assert.Equal(t, c.port, p)
		}
	}
	assert.True(t, isSpecialScheme("file"))
}

func defaultPortOK(scheme string) bool {
	_, ok := defaultPortForScheme(scheme)
	return ok
}

func TestStripTabsAndNewlines(t *testing.T) {
	assert.Equal(t, "https://example.com/", stripTabsAndNewlines("ht\ttp\ns://exa\rmple.com/"))
}

func TestTrimC0AndSpace(t *testing.T) {
	assert.Equal(t, "https://example.com", trimC0AndSpace("  \x01 https://example.com \x02 "))
}
