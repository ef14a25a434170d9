package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalHostDomain(t *testing.T) {
	h, err := marshalHost("example.com", true, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, HostDomain, h.Kind)
	assert.Equal(t, "example.com", h.Domain)
}

func TestMarshalHostIPv4(t *testing.T) {
	h, err := marshalHost("127.0.0.1", true, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, HostIPv4, h.Kind)
	assert.Equal(t, "127.0.0.1", h.String())
}

func TestMarshalHostIPv6Bracketed(t *testing.T) {
	h, err := marshalHost("[::1]", true, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, HostIPv6, h.Kind)
	assert.Equal(t, "[::1]", h.String())
}

func TestMarshalHostOpaque(t *testing.T) {
	h, err := marshalHost("example.com", false, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, HostOpaque, h.Kind)
}

func TestMarshalHostForbiddenCodePoint(t *testing.T) {
	_, err := marshalHost("exa mple.com", true, idnaOptions{})
	assert.Error(t, err)
	assert.Equal(t, KindForbiddenHostPoint, ErrorKind(err))
}

func TestMarshalHostIPv4Dispatch(t *testing.T) {
	// five all-digit parts are not an IPv4 address shape; the domain is
	// kept rather than the parse failing.
	h, err := marshalHost("1.2.3.4.5", true, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, HostDomain, h.Kind)
	assert.Equal(t, "1.2.3.4.5", h.Domain)

	// a terminal range failure on an address shape fails the host.
	_, err = marshalHost("192.168.0.257", true, idnaOptions{})
	assert.Equal(t, KindInvalidIPv4Address, ErrorKind(err))

	_, err = marshalHost("10000000000", true, idnaOptions{})
	assert.Equal(t, KindOverflow, ErrorKind(err))
}

func TestMarshalHostEmptyIsNotNone(t *testing.T) {
	h, err := marshalHost("", true, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, HostEmpty, h.Kind)
	assert.False(t, h.IsZero())
}
