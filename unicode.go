package whatwgurl

/*
unicode.go handles code point transcoding for § 4.9: validating UTF-8
and converting between UTF-8, UTF-16, and UTF-32 the way a user agent's
input stream normalization step must before the state machine ever sees
a code point. UTF-8 validity follows the Encoding Standard's UTF-8
decoder: the leading byte fixes the sequence length and the permitted
range of the second byte, which is where overlong encodings (E0 and F0
rows) and encoded surrogates (ED row) are ruled out; every later
continuation byte is a plain 0x80-0xBF.
*/

import (
	"unicode/utf16"
	"unicode/utf8"
)

var utf8RuneCount func([]byte) int = utf8.RuneCount

// utf8Sequence is one row of the Encoding Standard's lead-byte table:
// the total sequence length and the inclusive bounds on the second
// byte.
type utf8Sequence struct {
	size     int
	secondLo byte
	secondHi byte
}

// utf8SequenceFor classifies a leading byte, reporting ok=false for the
// bytes no well-formed sequence starts with (continuations, the
// overlong leads C0/C1, and F5 and above).
func utf8SequenceFor(lead byte) (utf8Sequence, bool) {
	switch {
	case lead <= 0x7F:
		return utf8Sequence{size: 1}, true
	case lead >= 0xC2 && lead <= 0xDF:
		return utf8Sequence{size: 2, secondLo: 0x80, secondHi: 0xBF}, true
	case lead == 0xE0:
		return utf8Sequence{size: 3, secondLo: 0xA0, secondHi: 0xBF}, true
	case lead == 0xED:
		return utf8Sequence{size: 3, secondLo: 0x80, secondHi: 0x9F}, true
	case lead >= 0xE1 && lead <= 0xEF:
		return utf8Sequence{size: 3, secondLo: 0x80, secondHi: 0xBF}, true
	case lead == 0xF0:
		return utf8Sequence{size: 4, secondLo: 0x90, secondHi: 0xBF}, true
	case lead == 0xF4:
		return utf8Sequence{size: 4, secondLo: 0x80, secondHi: 0x8F}, true
	case lead >= 0xF1 && lead <= 0xF3:
		return utf8Sequence{size: 4, secondLo: 0x80, secondHi: 0xBF}, true
	}
	return utf8Sequence{}, false
}

func isUTF8Continuation(b byte) bool { return b >= 0x80 && b <= 0xBF }

// isValidUTF8 reports whether s is well-formed UTF-8 with no overlong
// encodings, no encoded surrogates, and no truncated trailing sequence.
func isValidUTF8(s string) bool {
	for i := 0; i < len(s); {
		seq, ok := utf8SequenceFor(s[i])
		if !ok || i+seq.size > len(s) {
			return false
		}
		if seq.size > 1 {
			if s[i+1] < seq.secondLo || s[i+1] > seq.secondHi {
				return false
			}
			for j := 2; j < seq.size; j++ {
				if !isUTF8Continuation(s[i+j]) {
					return false
				}
			}
		}
		i += seq.size
	}
	return true
}

// utf8ToUTF32 decodes s into its sequence of Unicode scalar values,
// replacing any ill-formed subsequence with U+FFFD exactly as the
// Encoding Standard's UTF-8 decoder does.
func utf8ToUTF32(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	return out
}

// utf16ToUTF32 decodes a UTF-16 code unit sequence. A high surrogate
// not followed by a low surrogate, or a bare low surrogate, is an
// illegal-byte-sequence error; a well-formed pair decodes to one scalar.
func utf16ToUTF32(units []uint16) ([]rune, error) {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return nil, newParseErr(KindIllegalByteSequence, "", "unpaired high surrogate")
			}
			out = append(out, 0x10000+(rune(u)-0xD800)<<10+(rune(units[i+1])-0xDC00))
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return nil, newParseErr(KindIllegalByteSequence, "", "unpaired low surrogate")
		default:
			out = append(out, rune(u))
		}
	}
	return out, nil
}

// utf32ToUTF16 encodes Unicode scalar values back to UTF-16 code units.
func utf32ToUTF16(runes []rune) []uint16 {
	return utf16.Encode(runes)
}

func runeIsSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDFFF }
