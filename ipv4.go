package whatwgurl

/*
ipv4.go implements § 4.7: the IPv4 number parser and the IPv4 parser
built on top of it. Dotted parts accumulate in a staticVec the same way
the IPv6 piece parser below accumulates its 8 pieces -- both are
bounded sequences where overflow is a parse error, not a panic.

The host parser attempts an IPv4 parse on every ASCII domain and needs
two failure classes back: "this is not shaped like an IPv4 address at
all" (wrong digits, empty parts, more than four parts), on which it
keeps the domain, and a terminal range failure on something that IS an
address shape but doesn't fit, which fails the whole host parse. The
errNotAnIPv4Address sentinel marks the first class.
*/

import (
	"errors"
	"math"
)

// errNotAnIPv4Address reports input that is not structured like an IPv4
// address; the host parser treats this as "keep the domain" rather than
// a fatal address error.
var errNotAnIPv4Address = errors.New("not an IPv4 address")

// parseIPv4Number implements the "IPv4 number parser": it determines the
// numeric base from a leading "0x"/"0X" or "0" prefix, consumes the
// remaining digits in that base, and reports whether the input carried
// a non-decimal prefix (validationError in the caller's terms).
func parseIPv4Number(input string) (value uint64, validationError bool, err error) {
	if input == "" {
		return 0, false, errNotAnIPv4Address
	}

	base := 10
	if len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X') {
		validationError = true
		input = input[2:]
		base = 16
	} else if len(input) >= 1 && input[0] == '0' && len(input) > 1 {
		validationError = true
		input = input[1:]
		base = 8
	}

	if input == "" {
		return 0, validationError, nil
	}

	for i := 0; i < len(input); i++ {
		c := input[i]
		ok := false
		switch base {
		case 16:
			ok = isASCIIHex(rune(c))
		case 8:
			ok = c >= '0' && c <= '7'
		default:
			ok = isASCIIDigit(rune(c))
		}
		if !ok {
			return 0, validationError, errNotAnIPv4Address
		}
	}

	v, perr := puint(input, base, 64)
	if perr != nil {
		return 0, validationError, newParseErr(KindOverflow, input, "IPv4 number overflow")
	}
	return v, validationError, nil
}

// marshalIPv4 implements the "IPv4 parser" of § 4.7, returning the
// address as a 32-bit integer in host byte order alongside any parse
// error. A successful parse never exceeds 255.255.255.255; a bare
// number too large for 32 bits is an overflow, a dotted address with an
// out-of-range part an invalid address, and anything not shaped like an
// address at all the errNotAnIPv4Address sentinel.
func marshalIPv4(input string) (addr uint32, err error) {
	parts := splitIPv4Parts(input)
	if len(parts) == 0 {
		return 0, errNotAnIPv4Address
	}
	// a single trailing empty part is dropped.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return 0, errNotAnIPv4Address
	}

	var nums staticVec[uint64]
	for _, p := range parts {
		v, _, perr := parseIPv4Number(p)
		if perr == errNotAnIPv4Address {
			return 0, perr
		}
		if perr != nil {
			if len(parts) == 1 {
				return 0, perr
			}
			return 0, newParseErr(KindInvalidIPv4Address, input, "part overflow")
		}
		if !nums.push(v) {
			return 0, errNotAnIPv4Address
		}
	}

	// every part but the last must fit in a byte.
	for i := 0; i < nums.len()-1; i++ {
		if nums.at(i) > 255 {
			return 0, newParseErr(KindInvalidIPv4Address, input, "part out of range")
		}
	}

	last := nums.at(nums.len() - 1)
	maxLast := math.Pow(256, float64(5-nums.len()))
	if float64(last) >= maxLast {
		if nums.len() == 1 {
			return 0, newParseErr(KindOverflow, input, "address overflow")
		}
		return 0, newParseErr(KindInvalidIPv4Address, input, "last part out of range")
	}

	addr = uint32(last)
	for i := 0; i < nums.len()-1; i++ {
		n := uint32(nums.at(i))
		addr += n * uint32(math.Pow(256, float64(3-i)))
	}

	return addr, nil
}

func splitIPv4Parts(input string) []string {
	if input == "" {
		return nil
	}
	return split(input, ".")
}

// serializeIPv4 implements the IPv4 serializer of § 4.7.
func serializeIPv4(addr uint32) string {
	b := newStrBuilder()
	n := addr
	for i := 0; i < 4; i++ {
		b.WriteString(itoa(int(n % 256)))
		n /= 256
		if i < 3 {
			b.WriteByte('.')
		}
	}
	// the loop above writes least-significant octet first; reverse the
	// dotted groups so the output reads most-significant first.
	parts := split(b.String(), ".")
	for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
		parts[l], parts[r] = parts[r], parts[l]
	}
	return join(parts, ".")
}
