package whatwgurl

/*
punycode.go implements the RFC 3492 bootstring codec with the basic
code point set fixed to ASCII, the parameter profile Punycode defines:

	base = 36, tmin = 1, tmax = 26, skew = 38, damp = 700,
	initial_bias = 72, initial_n = 0x80, delimiter = '-'

Digits 0..25 encode as 'a'..'z' and 26..35 as '0'..'9'. Both directions
bound every accumulator at 32 bits: an adaptation step that would pass
0x7FFFFFFF fails with an overflow error, and an encoded character
outside the digit alphabet fails as bad input. [RFC 3492 §5, §6]
*/

const (
	punyBase        = 36
	punyTMin        = 1
	punyTMax        = 26
	punySkew        = 38
	punyDamp        = 700
	punyInitialBias = 72
	punyInitialN    = 0x80
	punyDelimiter   = '-'
	punyMaxInt      = 0x7FFFFFFF
)

// punyAdapt implements the bias adaptation function of RFC 3492 §3.4.
func punyAdapt(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= punyDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((punyBase-punyTMin)*punyTMax)/2 {
		delta /= punyBase - punyTMin
		k += punyBase
	}
	return k + ((punyBase-punyTMin+1)*delta)/(delta+punySkew)
}

func punyDigitChar(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('0' + d - 26)
}

func punyDigitValue(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= '0' && c <= '9':
		return int(c-'0') + 26, true
	}
	return 0, false
}

// punycodeEncode converts a label's code points to their bootstring
// form, without the "xn--" prefix.
func punycodeEncode(input []rune) (string, error) {
	var out []byte
	for _, r := range input {
		if r < punyInitialN {
			out = append(out, byte(r))
		}
	}
	basic := len(out)
	handled := basic
	if basic > 0 {
		out = append(out, punyDelimiter)
	}

	n := punyInitialN
	delta := 0
	bias := punyInitialBias
	for handled < len(input) {
		m := rune(0x110000)
		for _, r := range input {
			if r >= rune(n) && r < m {
				m = r
			}
		}
		if int(m)-n > (punyMaxInt-delta)/(handled+1) {
			return "", newParseErr(KindOverflow, string(input), "delta overflow")
		}
		delta += (int(m) - n) * (handled + 1)
		n = int(m)
		for _, r := range input {
			if int(r) < n {
				delta++
				if delta > punyMaxInt {
					return "", newParseErr(KindOverflow, string(input), "delta overflow")
				}
			}
			if int(r) == n {
				q := delta
				for k := punyBase; ; k += punyBase {
					t := k - bias
					if t < punyTMin {
						t = punyTMin
					} else if t > punyTMax {
						t = punyTMax
					}
					if q < t {
						break
					}
					out = append(out, punyDigitChar(t+(q-t)%(punyBase-t)))
					q = (q - t) / (punyBase - t)
				}
				out = append(out, punyDigitChar(q))
				bias = punyAdapt(delta, handled+1, handled == basic)
				delta = 0
				handled++
			}
		}
		delta++
		n++
	}
	return string(out), nil
}

// punycodeDecode converts a label's bootstring form (already stripped
// of its "xn--" prefix) back to code points.
func punycodeDecode(input string) ([]rune, error) {
	var output []rune
	pos := 0
	if idx := strlidx(input, "-"); idx >= 0 {
		for _, c := range input[:idx] {
			if c >= punyInitialN {
				return nil, newParseErr(KindBadInput, input, "non-basic code point before delimiter")
			}
			output = append(output, c)
		}
		pos = idx + 1
	}

	n := punyInitialN
	i := 0
	bias := punyInitialBias
	for pos < len(input) {
		oldi := i
		w := 1
		for k := punyBase; ; k += punyBase {
			if pos >= len(input) {
				return nil, newParseErr(KindBadInput, input, "truncated digit sequence")
			}
			digit, ok := punyDigitValue(input[pos])
			pos++
			if !ok {
				return nil, newParseErr(KindBadInput, input, "invalid digit")
			}
			if digit > (punyMaxInt-i)/w {
				return nil, newParseErr(KindOverflow, input, "index overflow")
			}
			i += digit * w
			t := k - bias
			if t < punyTMin {
				t = punyTMin
			} else if t > punyTMax {
				t = punyTMax
			}
			if digit < t {
				break
			}
			if w > punyMaxInt/(punyBase-t) {
				return nil, newParseErr(KindOverflow, input, "weight overflow")
			}
			w *= punyBase - t
		}

		outLen := len(output) + 1
		bias = punyAdapt(i-oldi, outLen, oldi == 0)
		if i/outLen > punyMaxInt-n {
			return nil, newParseErr(KindOverflow, input, "code point overflow")
		}
		n += i / outLen
		i %= outLen
		if n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
			return nil, newParseErr(KindBadInput, input, "decoded code point out of range")
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}
	return output, nil
}
