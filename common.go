package whatwgurl

/*
common.go holds the special-scheme table § 4.1 and § 4.10 both consult,
plus the § 4.4 input-sanitization helpers. This mirrors the shape of
github.com/nlnwa/whatwg-url's own specialSchemes map and isSpecialScheme
helper.
*/

// specialSchemes maps each special scheme, § 4.1, to its default port.
// A port of -1 means the scheme (file) has no default port at all.
var specialSchemes = map[string]int{
	"ftp":   21,
	"file":  -1,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

func isSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[scheme]
	return ok
}

func defaultPortForScheme(scheme string) (int, bool) {
	p, ok := specialSchemes[scheme]
	if !ok || p < 0 {
		return 0, false
	}
	return p, true
}

// stripTabsAndNewlines removes every ASCII tab or newline from s without
// touching other whitespace, exactly the § 4.4 "remove all ASCII tab or
// newline from input" step.
func stripTabsAndNewlines(s string) string {
	if stridx(s, "\t") < 0 && stridx(s, "\n") < 0 && stridx(s, "\r") < 0 {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// trimC0AndSpace removes leading and trailing C0 controls and spaces,
// the § 4.4 "remove any leading and trailing C0 control or space" step.
func trimC0AndSpace(s string) string {
	i := 0
	for i < len(s) && isC0OrSpace(rune(s[i])) {
		i++
	}
	j := len(s)
	for j > i && isC0OrSpace(rune(s[j-1])) {
		j--
	}
	return s[i:j]
}
