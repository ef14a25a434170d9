package whatwgurl

/*
parser.go implements the § 4.3 basic URL parser as a state machine
walking the input one code point at a time, the same structural shape
as nlnwa/whatwg-url's basicParser: a state enum, a pointer/buffer pair
threaded through a switch-per-state loop, and a stateOverride parameter
that lets the § 4.12 setters re-enter the loop at an arbitrary state
instead of duplicating its logic. Unlike that reference, the pointer
lives on parserState rather than as a loop-local variable, so a state
that needs to "re-consume" the current code point (the authority state
backtracking into host, most notably) can simply rewind ps.pointer
before returning its next state.
*/

type state int

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
	stateTerminate
)

// Parser holds the behavior flags that Parse and ParseRef thread
// through the state machine, configured via ParserOption, § F.3.
type Parser struct {
	ReportValidationErrors bool
	ValidationErrorsFatal  bool
	CheckBidi              bool
	CheckJoiners           bool
}

func (p *Parser) idnaOptions() idnaOptions {
	return idnaOptions{checkBidi: p.CheckBidi, checkJoiners: p.CheckJoiners}
}

// NewParser returns a Parser configured with opts applied over the
// zero-value defaults (validation errors silently ignored).
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o.apply(p)
	}
	return p
}

// Parse parses input as an absolute URL.
func (p *Parser) Parse(input string) (*URL, error) {
	u, _, err := p.basicParse(input, nil, stateSchemeStart)
	return u, err
}

// ParseRef resolves input against base, as § 4.3 describes for an
// anchor tag's href resolution.
func (p *Parser) ParseRef(input string, base *URL) (*URL, error) {
	u, _, err := p.basicParse(input, base, stateSchemeStart)
	return u, err
}

// ParseVerbose parses input as an absolute URL the way Parse does, and
// additionally reports whether any § 7 validation error was seen along
// the way. The flag is only populated when the parser was built with
// WithReportValidationErrors(true); otherwise it is always false.
func (p *Parser) ParseVerbose(input string) (*URL, bool, error) {
	return p.basicParse(input, nil, stateSchemeStart)
}

// ParseRefVerbose is ParseRef plus the same validation-error flag
// ParseVerbose returns.
func (p *Parser) ParseRefVerbose(input string, base *URL) (*URL, bool, error) {
	return p.basicParse(input, base, stateSchemeStart)
}

// ParseUTF16 parses a URL supplied as UTF-16 code units, the encoding
// DOM strings arrive in. An unpaired surrogate fails the transcoding
// step with an illegal-byte-sequence error before the state machine
// ever runs.
func (p *Parser) ParseUTF16(units []uint16) (*URL, error) {
	runes, err := utf16ToUTF32(units)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(runes))
}

// checkURLCodePoint raises the invalid-URL-unit validation error for a
// code point outside the URL code point set ('%' is tolerated here; the
// percent codec polices its own triplets).
func (p *Parser) checkURLCodePoint(c rune, ps *parserState) error {
	if c == '%' || isURLCodePoint(c) {
		return nil
	}
	return p.validationError(ps, KindBadInput, string(c), "code point is not a URL code point")
}

// validationError implements § 7's non-fatal validation-error model:
// ps.sawValidationError is set when the caller asked to track it, and
// a *ParseError is returned (aborting the parse) only when the caller
// asked to escalate validation errors to fatal.
func (p *Parser) validationError(ps *parserState, kind Kind, input, msg string) error {
	if p.ReportValidationErrors {
		ps.sawValidationError = true
	}
	if p.ValidationErrorsFatal {
		return newParseErr(kind, input, msg)
	}
	return nil
}

type parserState struct {
	url                *URL
	base               *URL
	runes              []rune
	pointer            int
	stateOverride      state
	hasStateOverride   bool
	buffer             []byte
	atSignSeen         bool
	insideBrackets     bool
	passwordTokenSeen  bool
	sawValidationError bool
}

func (ps *parserState) at(i int) (rune, bool) {
	if i < 0 || i >= len(ps.runes) {
		return 0, true
	}
	return ps.runes[i], false
}

func (ps *parserState) remaining() string { return string(ps.runes[ps.pointer:]) }

// basicParse implements the § 4.3 "basic URL parser" algorithm,
// returning alongside the parsed URL whether a § 7 validation error was
// observed (only tracked when the parser was built with
// WithReportValidationErrors(true); false otherwise).
func (p *Parser) basicParse(input string, base *URL, start state) (*URL, bool, error) {
	orig := input
	ps := &parserState{
		url:              &URL{},
		base:             base,
		stateOverride:    start,
		hasStateOverride: start != stateSchemeStart,
	}

	if hasLeadingOrTrailingC0(input) {
		if verr := p.validationError(ps, KindBadInput, orig, "leading/trailing C0 control or space"); verr != nil {
			return nil, ps.sawValidationError, verr
		}
	}
	input = trimC0AndSpace(input)
	if cntns(input, "\t") || cntns(input, "\n") || cntns(input, "\r") {
		if verr := p.validationError(ps, KindBadInput, orig, "tab or newline in input"); verr != nil {
			return nil, ps.sawValidationError, verr
		}
	}
	input = stripTabsAndNewlines(input)
	ps.runes = utf8ToUTF32(input)

	st := start
	for {
		c, eof := ps.at(ps.pointer)
		next, err := p.step(st, c, eof, ps)
		if err != nil {
			return nil, ps.sawValidationError, err
		}
		st = next
		if st == stateTerminate {
			break
		}
		ps.pointer++
		// A handful of states (the authority-to-host backtrack, most
		// notably) rewind ps.pointer by more than one code point when
		// the rewound-past delimiter was EOF itself; checking the
		// pointer position here instead of the eof value captured
		// before this iteration's step call is what lets the rewound
		// target state get its own turn instead of the loop exiting
		// before it ever runs.
		if ps.pointer > len(ps.runes) {
			break
		}
	}

	return ps.url, ps.sawValidationError, nil
}

func hasLeadingOrTrailingC0(s string) bool {
	if s == "" {
		return false
	}
	return isC0OrSpace(rune(s[0])) || isC0OrSpace(rune(s[len(s)-1]))
}

// step executes exactly one state's worth of the § 4.3 algorithm,
// returning the next state (or stateTerminate). A handful of states
// delegate into another state's logic for the same code point via a
// direct recursive call, mirroring the spec's "Decrease pointer by 1
// and go to X" / "switch to X and reconsider" instructions without
// actually touching ps.pointer for those reconsiderations. ps.pointer is
// rewound only where already-scanned code points must be replayed: the
// scheme state restarts from the beginning of input when no ':' follows
// the scheme buffer, the authority state backs up over its buffer into
// host, and the host and file-host states step back by one.
func (p *Parser) step(st state, c rune, eof bool, ps *parserState) (state, error) {
	u := ps.url
	switch st {
	case stateSchemeStart:
		if isASCIIAlpha(c) {
			if c >= 'A' && c <= 'Z' {
				if verr := p.validationError(ps, KindBadInput, string(c), "uppercase scheme character"); verr != nil {
					return stateTerminate, verr
				}
			}
			ps.buffer = append(ps.buffer, lc(string(c))[0])
			return stateScheme, nil
		}
		if !ps.hasStateOverride {
			return p.step(stateNoScheme, c, eof, ps)
		}
		return stateTerminate, newParseErr(KindInvalidSchemeCharacter, string(c), "scheme must start with a letter")

	case stateScheme:
		if isSchemeTrailing(c) {
			if c >= 'A' && c <= 'Z' {
				if verr := p.validationError(ps, KindBadInput, string(c), "uppercase scheme character"); verr != nil {
					return stateTerminate, verr
				}
			}
			ps.buffer = append(ps.buffer, lc(string(c))[0])
			return stateScheme, nil
		}
		if c == ':' {
			scheme := string(ps.buffer)
			if ps.hasStateOverride {
				if isSpecialScheme(u.Scheme) != isSpecialScheme(scheme) {
					return stateTerminate, nil
				}
				if (u.IncludesCredentials() || u.Port != nil) && scheme == "file" {
					return stateTerminate, nil
				}
				if u.Scheme == "file" && u.Host.Kind == HostEmpty {
					return stateTerminate, nil
				}
			}
			u.Scheme = scheme
			ps.buffer = nil
			if ps.hasStateOverride {
				if u.Port != nil {
					if def, ok := defaultPortForScheme(scheme); ok && def == *u.Port {
						u.Port = nil
					}
				}
				return stateTerminate, nil
			}
			if u.Scheme == "file" {
				return stateFile, nil
			}
			if isSpecialScheme(u.Scheme) && ps.base != nil && ps.base.Scheme == u.Scheme {
				return stateSpecialRelativeOrAuthority, nil
			}
			if isSpecialScheme(u.Scheme) {
				return stateSpecialAuthoritySlashes, nil
			}
			if nc, nEOF := ps.at(ps.pointer + 1); !nEOF && nc == '/' {
				ps.pointer++
				return statePathOrAuthority, nil
			}
			u.CannotBeABaseURL = true
			u.Path = []string{""}
			return stateOpaquePath, nil
		}
		if !ps.hasStateOverride {
			ps.buffer = nil
			ps.pointer = -1
			return stateNoScheme, nil
		}
		return stateTerminate, newParseErr(KindInvalidSchemeCharacter, string(c), "invalid scheme character")

	case stateNoScheme:
		if ps.base == nil || (ps.base.CannotBeABaseURL && c != '#') {
			return stateTerminate, newParseErr(KindNotAnAbsoluteURLWithFragment, string(c), "missing scheme, no base URL")
		}
		if ps.base.CannotBeABaseURL && c == '#' {
			u.Scheme = ps.base.Scheme
			u.Path = append([]string(nil), ps.base.Path...)
			u.CannotBeABaseURL = true
			u.Query = copyStrPtr(ps.base.Query)
			u.Fragment = strPtr("")
			return stateFragment, nil
		}
		if ps.base.Scheme != "file" {
			return p.step(stateRelative, c, eof, ps)
		}
		return p.step(stateFile, c, eof, ps)

	case stateSpecialRelativeOrAuthority:
		if nc, nEOF := ps.at(ps.pointer + 1); c == '/' && !nEOF && nc == '/' {
			ps.pointer++
			return stateSpecialAuthorityIgnoreSlashes, nil
		}
		if verr := p.validationError(ps, KindBadInput, "", "expected // after special scheme"); verr != nil {
			return stateTerminate, verr
		}
		return p.step(stateRelative, c, eof, ps)

	case statePathOrAuthority:
		if c == '/' {
			return stateAuthority, nil
		}
		return p.step(statePath, c, eof, ps)

	case stateRelative:
		u.Scheme = ps.base.Scheme
		if c == '/' {
			return stateRelativeSlash, nil
		}
		if isSpecialScheme(u.Scheme) && c == '\\' {
			if verr := p.validationError(ps, KindBadInput, "", "backslash used as path separator"); verr != nil {
				return stateTerminate, verr
			}
			return stateRelativeSlash, nil
		}
		u.Username = ps.base.Username
		u.Password = ps.base.Password
		u.Host = ps.base.Host
		u.Port = copyIntPtr(ps.base.Port)
		u.Path = append([]string(nil), ps.base.Path...)
		u.Query = copyStrPtr(ps.base.Query)
		switch {
		case eof:
			return stateTerminate, nil
		case c == '?':
			u.Query = strPtr("")
			return stateQuery, nil
		case c == '#':
			u.Fragment = strPtr("")
			return stateFragment, nil
		default:
			u.Query = nil
			if len(u.Path) > 0 {
				u.Path = u.Path[:len(u.Path)-1]
			}
			return p.step(statePath, c, eof, ps)
		}

	case stateRelativeSlash:
		if isSpecialScheme(u.Scheme) && (c == '/' || c == '\\') {
			return stateSpecialAuthorityIgnoreSlashes, nil
		}
		if c == '/' {
			return stateAuthority, nil
		}
		u.Username = ps.base.Username
		u.Password = ps.base.Password
		u.Host = ps.base.Host
		u.Port = copyIntPtr(ps.base.Port)
		return p.step(statePath, c, eof, ps)

	case stateSpecialAuthoritySlashes:
		if nc, nEOF := ps.at(ps.pointer + 1); c == '/' && !nEOF && nc == '/' {
			ps.pointer++
			return stateSpecialAuthorityIgnoreSlashes, nil
		}
		if verr := p.validationError(ps, KindBadInput, "", "expected // after special scheme"); verr != nil {
			return stateTerminate, verr
		}
		return p.step(stateSpecialAuthorityIgnoreSlashes, c, eof, ps)

	case stateSpecialAuthorityIgnoreSlashes:
		if c != '/' && c != '\\' {
			return p.step(stateAuthority, c, eof, ps)
		}
		return stateSpecialAuthorityIgnoreSlashes, nil

	case stateAuthority:
		if c == '@' {
			if ps.atSignSeen {
				ps.buffer = append([]byte("%40"), ps.buffer...)
			}
			ps.atSignSeen = true
			applyUserinfo(u, ps)
			ps.buffer = nil
			return stateAuthority, nil
		}
		if eof || c == '/' || c == '?' || c == '#' || (isSpecialScheme(u.Scheme) && c == '\\') {
			if ps.atSignSeen && len(ps.buffer) == 0 {
				return stateTerminate, newParseErr(KindBadInput, "", "empty host after @ in authority")
			}
			// the pointer indexes runes; the buffer holds UTF-8 bytes.
			ps.pointer -= utf8RuneCount(ps.buffer) + 1
			ps.buffer = nil
			return stateHost, nil
		}
		ps.buffer = append(ps.buffer, string(c)...)
		return stateAuthority, nil

	case stateHost, stateHostname:
		if ps.hasStateOverride && u.Scheme == "file" {
			return p.step(stateFileHost, c, eof, ps)
		}
		if c == ':' && !ps.insideBrackets {
			if len(ps.buffer) == 0 {
				return stateTerminate, newParseErr(KindEmptyHostname, "", "empty host before ':'")
			}
			h, herr := marshalHost(string(ps.buffer), isSpecialScheme(u.Scheme), p.idnaOptions())
			if herr != nil {
				return stateTerminate, herr
			}
			u.Host = h
			ps.buffer = nil
			if ps.hasStateOverride && st == stateHostname {
				return stateTerminate, nil
			}
			return statePort, nil
		}
		if eof || c == '/' || c == '?' || c == '#' || (isSpecialScheme(u.Scheme) && c == '\\') {
			ps.pointer--
			if isSpecialScheme(u.Scheme) && len(ps.buffer) == 0 {
				return stateTerminate, newParseErr(KindEmptyHostname, "", "empty host in special URL")
			}
			h, herr := marshalHost(string(ps.buffer), isSpecialScheme(u.Scheme), p.idnaOptions())
			if herr != nil {
				return stateTerminate, herr
			}
			u.Host = h
			ps.buffer = nil
			if ps.hasStateOverride {
				return stateTerminate, nil
			}
			return statePathStart, nil
		}
		if c == '[' {
			ps.insideBrackets = true
		} else if c == ']' {
			ps.insideBrackets = false
		}
		ps.buffer = append(ps.buffer, string(c)...)
		// st, not stateHost: a hostname-state reparse must keep its
		// identity so the ':' check above can stop before the port.
		return st, nil

	case statePort:
		if isASCIIDigit(c) {
			ps.buffer = append(ps.buffer, byte(c))
			return statePort, nil
		}
		if eof || c == '/' || c == '?' || c == '#' || (isSpecialScheme(u.Scheme) && c == '\\') || ps.hasStateOverride {
			if len(ps.buffer) > 0 {
				portVal, perr := atoi(string(ps.buffer))
				if perr != nil || portVal > 65535 {
					return stateTerminate, newParseErr(KindInvalidPort, string(ps.buffer), "port out of range")
				}
				if def, ok := defaultPortForScheme(u.Scheme); ok && def == portVal {
					u.Port = nil
				} else {
					u.Port = &portVal
				}
				ps.buffer = nil
			}
			if ps.hasStateOverride {
				return stateTerminate, nil
			}
			return p.step(statePathStart, c, eof, ps)
		}
		return stateTerminate, newParseErr(KindInvalidPort, string(c), "invalid port character")

	case stateFile:
		u.Scheme = "file"
		u.Host = Host{Kind: HostEmpty}
		if c == '/' || c == '\\' {
			return stateFileSlash, nil
		}
		if ps.base != nil && ps.base.Scheme == "file" {
			u.Host = ps.base.Host
			u.Path = append([]string(nil), ps.base.Path...)
			u.Query = copyStrPtr(ps.base.Query)
			switch {
			case c == '?':
				u.Query = strPtr("")
				return stateQuery, nil
			case c == '#':
				u.Fragment = strPtr("")
				return stateFragment, nil
			case eof:
				return stateTerminate, nil
			default:
				u.Query = nil
				if startsWithWindowsDriveLetter(ps.remaining()) {
					u.Path = nil
				} else if len(u.Path) > 0 {
					u.Path = u.Path[:len(u.Path)-1]
				}
				return p.step(statePath, c, eof, ps)
			}
		}
		return p.step(statePath, c, eof, ps)

	case stateFileSlash:
		if c == '/' || c == '\\' {
			return stateFileHost, nil
		}
		if ps.base != nil && ps.base.Scheme == "file" {
			u.Host = ps.base.Host
			if !startsWithWindowsDriveLetter(ps.remaining()) && len(ps.base.Path) > 0 && isNormalizedWindowsDriveLetter(ps.base.Path[0]) {
				u.Path = []string{ps.base.Path[0]}
			}
		}
		return p.step(statePath, c, eof, ps)

	case stateFileHost:
		if eof || c == '/' || c == '\\' || c == '?' || c == '#' {
			host := string(ps.buffer)
			if isWindowsDriveLetter(host) {
				if verr := p.validationError(ps, KindBadInput, host, "file host looks like a Windows drive letter"); verr != nil {
					return stateTerminate, verr
				}
				ps.buffer = nil
				return p.step(statePath, c, eof, ps)
			}
			ps.pointer--
			if host == "" {
				u.Host = Host{Kind: HostEmpty}
			} else {
				h, herr := marshalHost(host, true, p.idnaOptions())
				if herr != nil {
					return stateTerminate, herr
				}
				if h.Kind == HostDomain && h.Domain == "localhost" {
					h = Host{Kind: HostEmpty}
				}
				u.Host = h
			}
			ps.buffer = nil
			if ps.hasStateOverride {
				return stateTerminate, nil
			}
			return statePathStart, nil
		}
		ps.buffer = append(ps.buffer, string(c)...)
		return stateFileHost, nil

	case statePathStart:
		if isSpecialScheme(u.Scheme) {
			if c == '\\' {
				if verr := p.validationError(ps, KindBadInput, "", "backslash used as path separator"); verr != nil {
					return stateTerminate, verr
				}
			}
			if c == '/' || c == '\\' {
				return statePath, nil
			}
			return p.step(statePath, c, eof, ps)
		}
		if !ps.hasStateOverride && c == '?' {
			u.Query = strPtr("")
			return stateQuery, nil
		}
		if !ps.hasStateOverride && c == '#' {
			u.Fragment = strPtr("")
			return stateFragment, nil
		}
		if !eof {
			if c == '/' {
				return statePath, nil
			}
			return p.step(statePath, c, eof, ps)
		}
		if ps.hasStateOverride && u.Host.IsZero() {
			u.Path = append(u.Path, "")
		}
		return stateTerminate, nil

	case statePath:
		isSlash := c == '/' || (isSpecialScheme(u.Scheme) && c == '\\')
		if c == '\\' && isSpecialScheme(u.Scheme) {
			if verr := p.validationError(ps, KindBadInput, "", "backslash used as path separator"); verr != nil {
				return stateTerminate, verr
			}
		}
		if isSlash || eof || (!ps.hasStateOverride && (c == '?' || c == '#')) {
			segment := string(ps.buffer)
			if isDoubleDotSegment(segment) {
				shortenPath(u)
				if !isSlash {
					u.Path = append(u.Path, "")
				}
			} else if isSingleDotSegment(segment) {
				if !isSlash {
					u.Path = append(u.Path, "")
				}
			} else {
				if u.Scheme == "file" && len(u.Path) == 0 && isWindowsDriveLetter(segment) {
					segment = segment[:1] + ":"
				}
				u.Path = append(u.Path, segment)
			}
			ps.buffer = nil
			switch {
			case c == '?':
				u.Query = strPtr("")
				return stateQuery, nil
			case c == '#':
				u.Fragment = strPtr("")
				return stateFragment, nil
			case eof:
				return stateTerminate, nil
			default:
				return statePath, nil
			}
		}
		if verr := p.checkURLCodePoint(c, ps); verr != nil {
			return stateTerminate, verr
		}
		ps.buffer = append(ps.buffer, percentEncodeByteIfNeeded(c, pathPercentEncodeSet)...)
		return statePath, nil

	case stateOpaquePath:
		switch {
		case c == '?':
			u.Query = strPtr("")
			return stateQuery, nil
		case c == '#':
			u.Fragment = strPtr("")
			return stateFragment, nil
		case eof:
			return stateTerminate, nil
		default:
			if verr := p.checkURLCodePoint(c, ps); verr != nil {
				return stateTerminate, verr
			}
			if len(u.Path) == 0 {
				u.Path = []string{""}
			}
			u.Path[0] += percentEncodeByteIfNeeded(c, c0ControlPercentEncodeSet)
			return stateOpaquePath, nil
		}

	case stateQuery:
		set := queryPercentEncodeSet
		if isSpecialScheme(u.Scheme) {
			set = specialQueryPercentEncodeSet
		}
		switch {
		case c == '#' && !ps.hasStateOverride:
			u.Fragment = strPtr("")
			return stateFragment, nil
		case eof:
			return stateTerminate, nil
		default:
			if verr := p.checkURLCodePoint(c, ps); verr != nil {
				return stateTerminate, verr
			}
			*u.Query += percentEncodeByteIfNeeded(c, set)
			return stateQuery, nil
		}

	case stateFragment:
		if eof {
			return stateTerminate, nil
		}
		if verr := p.checkURLCodePoint(c, ps); verr != nil {
			return stateTerminate, verr
		}
		*u.Fragment += percentEncodeByteIfNeeded(c, fragmentPercentEncodeSet)
		return stateFragment, nil
	}

	return stateTerminate, newParseErr(KindBadInput, "", "unreachable state")
}

func applyUserinfo(u *URL, ps *parserState) {
	for _, r := range string(ps.buffer) {
		if r == ':' && !ps.passwordTokenSeen {
			ps.passwordTokenSeen = true
			continue
		}
		enc := percentEncodeString(string(r), userinfoPercentEncodeSet)
		if ps.passwordTokenSeen {
			u.Password += enc
		} else {
			u.Username += enc
		}
	}
}

func isSingleDotSegment(s string) bool {
	return s == "." || streqf(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	if s == ".." {
		return true
	}
	lcs := lc(s)
	return lcs == ".%2e" || lcs == "%2e." || lcs == "%2e%2e"
}

func shortenPath(u *URL) {
	if u.Scheme == "file" && len(u.Path) == 1 && isNormalizedWindowsDriveLetter(u.Path[0]) {
		return
	}
	if len(u.Path) > 0 {
		u.Path = u.Path[:len(u.Path)-1]
	}
}

func percentEncodeByteIfNeeded(c rune, set PercentEncodeSet) string {
	if c < 128 {
		if set.test(byte(c)) {
			return percentEncodeByte(byte(c))
		}
		return string(c)
	}
	return percentEncodeString(string(c), set)
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func strPtr(s string) *string { return &s }
