package whatwgurl

import (
	"github.com/bits-and-blooms/bitset"
)

/*
charset.go builds the fixed ASCII character-class bitsets the state
machine and host parser test against, in the same shape
github.com/nlnwa/whatwg-url's parser builds its ASCIIAlpha /
ASCIIAlphanumeric bitsets: a package-level *bitset.BitSet per class,
assembled once in init() and tested with .Test(uint(b)).
*/

var (
	asciiAlpha          *bitset.BitSet
	asciiDigit          *bitset.BitSet
	asciiAlphanumeric   *bitset.BitSet
	asciiHex            *bitset.BitSet
	schemeTrailing      *bitset.BitSet // alpha/digit + '+' '-' '.'
	forbiddenHostPoints *bitset.BitSet
	c0OrSpace           *bitset.BitSet // bytes 0x00-0x20 inclusive
	asciiTabOrNewline   *bitset.BitSet // '\t' '\n' '\r'
)

func setRange(b *bitset.BitSet, lo, hi byte) *bitset.BitSet {
	for c := int(lo); c <= int(hi); c++ {
		b.Set(uint(c))
	}
	return b
}

func init() {
	asciiAlpha = bitset.New(128)
	setRange(asciiAlpha, 'a', 'z')
	setRange(asciiAlpha, 'A', 'Z')

	asciiDigit = bitset.New(128)
	setRange(asciiDigit, '0', '9')

	asciiAlphanumeric = asciiAlpha.Clone().Union(asciiDigit)

	asciiHex = bitset.New(128)
	setRange(asciiHex, '0', '9')
	setRange(asciiHex, 'a', 'f')
	setRange(asciiHex, 'A', 'F')

	schemeTrailing = asciiAlphanumeric.Clone()
	schemeTrailing.Set('+').Set('-').Set('.')

	// forbidden host code points, § 4.2: NUL TAB LF CR SP # % / : < > ? @ [ \ ] ^ |
	forbiddenHostPoints = bitset.New(128)
	for _, c := range []byte{0x00, '\t', '\n', '\r', ' ', '#', '%', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'} {
		forbiddenHostPoints.Set(uint(c))
	}

	c0OrSpace = bitset.New(128)
	setRange(c0OrSpace, 0x00, 0x20)

	asciiTabOrNewline = bitset.New(128)
	asciiTabOrNewline.Set('\t').Set('\n').Set('\r')
}

func isASCIIAlpha(r rune) bool { return r >= 0 && r < 128 && asciiAlpha.Test(uint(r)) }
func isASCIIDigit(r rune) bool { return r >= 0 && r < 128 && asciiDigit.Test(uint(r)) }
func isASCIIAlphanumeric(r rune) bool {
	return r >= 0 && r < 128 && asciiAlphanumeric.Test(uint(r))
}
func isASCIIHex(r rune) bool { return r >= 0 && r < 128 && asciiHex.Test(uint(r)) }
func isSchemeTrailing(r rune) bool {
	return r >= 0 && r < 128 && schemeTrailing.Test(uint(r))
}
func isForbiddenHostPoint(b byte) bool {
	return b < 128 && forbiddenHostPoints.Test(uint(b))
}
func isC0OrSpace(r rune) bool        { return r >= 0 && r < 128 && c0OrSpace.Test(uint(r)) }
func isASCIITabOrNewline(r rune) bool { return r >= 0 && r < 128 && asciiTabOrNewline.Test(uint(r)) }

/*
isURLCodePoint implements the WHATWG "URL code points" definition: ASCII
alphanumerics, a fixed set of ASCII punctuation, and any code point in
U+00A0..U+10FFFD excluding surrogates and noncharacters.
*/
func isURLCodePoint(r rune) bool {
	if isASCIIAlphanumeric(r) {
		return true
	}
	switch r {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '=', '?', '@', '_', '~':
		return true
	}
	if r < 0x00A0 || r > 0x10FFFD {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false // surrogate
	}
	if isNonCharacter(r) {
		return false
	}
	return true
}

func isNonCharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

func isWindowsDriveLetter(s string) bool {
	if len(s) != 2 {
		return false
	}
	return isASCIIAlpha(rune(s[0])) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(rune(s[0])) && s[1] == ':'
}

func startsWithWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[:2]) {
		return false
	}
	if len(s) == 2 {
		return true
	}
	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}
