package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainToASCII(t *testing.T) {
	ascii, err := domainToASCII("example.com", false, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "example.com", ascii)

	ascii, err = domainToASCII("faß.ExAmPlE", false, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "xn--fa-hia.example", ascii)

	// fullwidth forms fold to their ASCII counterparts.
	ascii, err = domainToASCII("Ｇｏ.com", false, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "go.com", ascii)

	// ideographic full stop maps to the label separator.
	ascii, err = domainToASCII("a。b", false, idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "a.b", ascii)
}

func TestDomainToASCIIErrors(t *testing.T) {
	// C1 controls are disallowed by the mapping table.
	_, err := domainToASCII("a\u0085b", false, idnaOptions{})
	assert.Equal(t, KindDomainError, ErrorKind(err))

	// leading and trailing hyphens fail label validation.
	_, err = domainToASCII("-bad.example", false, idnaOptions{})
	assert.Equal(t, KindDomainError, ErrorKind(err))
	_, err = domainToASCII("bad-.example", false, idnaOptions{})
	assert.Equal(t, KindDomainError, ErrorKind(err))

	// the reserved third/fourth hyphen pair is only valid behind "xn".
	_, err = domainToASCII("ab--cd.example", false, idnaOptions{})
	assert.Equal(t, KindDomainError, ErrorKind(err))

	// a domain of only ignored code points maps to nothing.
	_, err = domainToASCII("\u00ad", false, idnaOptions{})
	assert.Equal(t, KindDomainError, ErrorKind(err))
}

func TestDomainToASCIICheckBidi(t *testing.T) {
	_, err := domainToASCII("example.com", false, idnaOptions{checkBidi: true})
	assert.NoError(t, err)
	_, err = domainToASCII("example.com", false, idnaOptions{checkJoiners: true})
	assert.NoError(t, err)
}

func TestDomainToUnicode(t *testing.T) {
	uni, err := domainToUnicode("xn--fa-hia.example", idnaOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "faß.example", uni)
}

func TestDomainConversionExportedRoundTrip(t *testing.T) {
	ascii, err := DomainToASCII("⌘.ws")
	assert.NoError(t, err)
	assert.Equal(t, "xn--bih.ws", ascii)

	uni, err := DomainToUnicode(ascii)
	assert.NoError(t, err)
	assert.Equal(t, "⌘.ws", uni)
}

func TestPunycodeRoundTrip(t *testing.T) {
	for _, label := range []string{"faß", "⌘", "café", "bücher", "中文", "a1é"} {
		encoded, err := punycodeEncode([]rune(label))
		require.NoError(t, err, label)
		decoded, err := punycodeDecode(encoded)
		require.NoError(t, err, label)
		assert.Equal(t, label, string(decoded), label)
	}
}

func TestPunycodeKnownEncodings(t *testing.T) {
	cases := []struct{ label, encoded string }{
		{"faß", "fa-hia"},
		{"⌘", "bih"},
		{"café", "caf-dma"},
	}
	for _, c := range cases {
		encoded, err := punycodeEncode([]rune(c.label))
		require.NoError(t, err, c.label)
		assert.Equal(t, c.encoded, encoded, c.label)

		decoded, err := punycodeDecode(c.encoded)
		require.NoError(t, err, c.encoded)
		assert.Equal(t, c.label, string(decoded), c.encoded)
	}
}

func TestPunycodeDecodeBadInput(t *testing.T) {
	// '!' is not in the digit alphabet.
	_, err := punycodeDecode("a!b")
	assert.Equal(t, KindBadInput, ErrorKind(err))

	// a digit sequence cut off before its terminating digit.
	_, err = punycodeDecode("fa-z")
	assert.Equal(t, KindBadInput, ErrorKind(err))

	// non-basic code point before the delimiter.
	_, err = punycodeDecode("é-a")
	assert.Equal(t, KindBadInput, ErrorKind(err))
}

func TestPunycodeDecodeOverflow(t *testing.T) {
	_, err := punycodeDecode("99999999999999")
	assert.Equal(t, KindOverflow, ErrorKind(err))
}

func TestPunycodeErrorsSurfaceThroughHostParse(t *testing.T) {
	_, err := Parse("http://xn--a!b.com/")
	assert.Equal(t, KindBadInput, ErrorKind(err))

	_, err = Parse("http://xn--99999999999999.com/")
	assert.Equal(t, KindOverflow, ErrorKind(err))
}

func TestIDNALookupBinarySearch(t *testing.T) {
	assert.Equal(t, idnaMapped, idnaLookup('A').status)
	assert.Equal(t, idnaDeviation, idnaLookup('ß').status)
	assert.Equal(t, idnaIgnored, idnaLookup(0x00AD).status)
	assert.Equal(t, idnaDisallowed, idnaLookup(0x0085).status)
	// uncovered code points default to valid.
	assert.Equal(t, idnaValid, idnaLookup('a').status)
	assert.Equal(t, idnaValid, idnaLookup(0x2318).status)
}
