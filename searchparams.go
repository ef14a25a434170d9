package whatwgurl

/*
searchparams.go implements the application/x-www-form-urlencoded parser
and serializer plus the SearchParams list that binds live to a URL's
query string, the way this package's other record types pair a value
holder with an update method instead of reaching for a full observer
framework.
*/

// SearchParam is one name/value pair in application/x-www-form-urlencoded
// order.
type SearchParam struct {
	Name  string
	Value string
}

// SearchParams is an ordered, possibly-duplicate-keyed list of name/value
// pairs, with an optional back-reference to the URL whose Query it
// mirrors so mutating methods can update the URL in place.
type SearchParams struct {
	list  []SearchParam
	owner *URL
}

// NewSearchParams parses init per the "application/x-www-form-urlencoded
// parser" of § 4.4, with no owning URL -- callers needing the live
// binding go through URL.SearchParams instead.
func NewSearchParams(init string) *SearchParams {
	return &SearchParams{list: parseFormURLEncoded(init)}
}

// SearchParams returns a SearchParams bound to r's Query, § 4.4's "list
// associated with a URLSearchParams object". Every mutating method
// writes the serialized list back to r.Query.
func (r *URL) SearchParams() *SearchParams {
	q := ""
	if r.Query != nil {
		q = *r.Query
	}
	return &SearchParams{list: parseFormURLEncoded(q), owner: r}
}

func parseFormURLEncoded(s string) []SearchParam {
	if s == "" {
		return nil
	}
	var out []SearchParam
	for _, piece := range splitFormURLEncodedPieces(s) {
		if piece == "" {
			continue
		}
		name, value := piece, ""
		if idx := stridx(piece, "="); idx >= 0 {
			name, value = piece[:idx], piece[idx+1:]
		}
		name = formURLDecode(name)
		value = formURLDecode(value)
		out = append(out, SearchParam{Name: name, Value: value})
	}
	return out
}

// splitFormURLEncodedPieces implements the § 4.4 parser's "split on any
// of '&' or ';'" instruction, preserving the no-regex, single-pass
// splitting style the rest of this file uses.
func splitFormURLEncodedPieces(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '&' || s[i] == ';' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func formURLDecode(s string) string {
	s = repAll(s, "+", " ")
	return percentDecode(s)
}

// formURLEncode escapes one form-urlencoded token: a space becomes '+',
// unreserved bytes pass through, everything else is percent-encoded. The
// space substitution has to happen here rather than as a pre-pass, since
// '+' itself is in the encode set.
func formURLEncode(s string) string {
	b := newStrBuilder()
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case formURLEncodedPercentEncodeSet.test(c):
			b.WriteString(percentEncodeByte(c))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// String serializes the list per the § 4.4 "application/x-www-form-
// urlencoded serializer".
func (sp *SearchParams) String() string {
	b := newStrBuilder()
	for i, p := range sp.list {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(formURLEncode(p.Name))
		b.WriteByte('=')
		b.WriteString(formURLEncode(p.Value))
	}
	return b.String()
}

func (sp *SearchParams) sync() {
	if sp.owner == nil {
		return
	}
	s := sp.String()
	if s == "" {
		sp.owner.Query = nil
		return
	}
	sp.owner.Query = &s
}

// Append adds a new name/value pair.
func (sp *SearchParams) Append(name, value string) {
	sp.list = append(sp.list, SearchParam{Name: name, Value: value})
	sp.sync()
}

// Delete removes every pair matching name, or matching name and value
// when value is provided.
func (sp *SearchParams) Delete(name string, value ...string) {
	filtered := sp.list[:0]
	for _, p := range sp.list {
		if p.Name == name && (len(value) == 0 || p.Value == value[0]) {
			continue
		}
		filtered = append(filtered, p)
	}
	sp.list = filtered
	sp.sync()
}

// Clear removes every pair, emptying the bound URL's query with it.
func (sp *SearchParams) Clear() {
	sp.list = nil
	sp.sync()
}

// Get returns the first value for name, and whether it was present.
func (sp *SearchParams) Get(name string) (string, bool) {
	for _, p := range sp.list {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll returns every value for name, in list order.
func (sp *SearchParams) GetAll(name string) []string {
	var out []string
	for _, p := range sp.list {
		if p.Name == name {
			out = append(out, p.Value)
		}
	}
	return out
}

// Has reports whether name is present, or whether the pair (name,
// value) is present when value is provided.
func (sp *SearchParams) Has(name string, value ...string) bool {
	for _, p := range sp.list {
		if p.Name == name && (len(value) == 0 || p.Value == value[0]) {
			return true
		}
	}
	return false
}

// Set replaces the value of the first pair matching name, removing any
// others, or appends a new pair if name wasn't present.
func (sp *SearchParams) Set(name, value string) {
	found := false
	filtered := sp.list[:0]
	for _, p := range sp.list {
		if p.Name == name {
			if !found {
				p.Value = value
				filtered = append(filtered, p)
				found = true
			}
			continue
		}
		filtered = append(filtered, p)
	}
	sp.list = filtered
	if !found {
		sp.list = append(sp.list, SearchParam{Name: name, Value: value})
	}
	sp.sync()
}

// Sort reorders the list by name using a stable sort, relative pair
// order preserved among pairs that share a name, § 4.4's "sort" method.
func (sp *SearchParams) Sort() {
	list := sp.list
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j-1].Name > list[j].Name; j-- {
			list[j-1], list[j] = list[j], list[j-1]
		}
	}
	sp.sync()
}

// Entries returns a copy of the list's current pairs.
func (sp *SearchParams) Entries() []SearchParam {
	return append([]SearchParam(nil), sp.list...)
}

// Size returns the number of pairs.
func (sp *SearchParams) Size() int { return len(sp.list) }

// IsZero reports whether sp is nil or holds no pairs.
func (sp *SearchParams) IsZero() bool { return sp == nil || len(sp.list) == 0 }

// Clone deep-copies the pair list, detached from any owning URL, so the
// copy can be mutated without touching the original's query.
func (sp *SearchParams) Clone() *SearchParams {
	return &SearchParams{list: append([]SearchParam(nil), sp.list...)}
}
