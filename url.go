package whatwgurl

/*
url.go is the package's façade: package-level Parse/ParseRef
convenience functions over a shared default Parser, plus the § 4.12
setters (SetProtocol, SetHostname, ...), most of which re-enter the
state machine with a state override to mutate one component of the URL
in place.
*/

var defaultParser = NewParser()

// Protocol returns the § 6.1 "protocol" property: scheme plus the
// trailing colon.
func (r URL) Protocol() string { return r.Scheme + ":" }

// Hostname returns the § 6.1 "hostname" property: the serialized host
// with no port.
func (r URL) Hostname() string { return r.Host.String() }

// HostPort returns the § 6.1 "host" property: hostname plus ":port"
// when a port is present. Named HostPort rather than Host to avoid
// colliding with the record's Host field.
func (r URL) HostPort() string {
	h := r.Host.String()
	if r.Port != nil {
		h += ":" + itoa(*r.Port)
	}
	return h
}

// PortString returns the § 6.1 "port" property: the decimal port, or
// the empty string when unset.
func (r URL) PortString() string {
	if r.Port == nil {
		return ""
	}
	return itoa(*r.Port)
}

// Pathname returns the § 6.1 "pathname" property.
func (r URL) Pathname() string { return r.serializePathForDisplay() }

// Search returns the § 6.1 "search" property: "?" plus the query, or
// the empty string when the query is unset.
func (r URL) Search() string {
	if r.Query == nil {
		return ""
	}
	return "?" + *r.Query
}

// Hash returns the § 6.1 "hash" property: "#" plus the fragment, or the
// empty string when the fragment is unset.
func (r URL) Hash() string {
	if r.Fragment == nil {
		return ""
	}
	return "#" + *r.Fragment
}

// Parse parses input as an absolute URL using the package default
// parser (validation errors ignored, matching the conformance test
// runner's "non-fatal" semantics).
func Parse(input string) (*URL, error) {
	return defaultParser.Parse(input)
}

// ParseRef parses input relative to base using the package default
// parser.
func ParseRef(input string, base *URL) (*URL, error) {
	return defaultParser.ParseRef(input, base)
}

// SetHref implements assigning to URL's href attribute: input is
// reparsed from scratch, replacing every field of r on success and
// leaving r untouched on failure.
func (r *URL) SetHref(input string) error {
	parsed, err := defaultParser.Parse(input)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// SetProtocol implements § 4.12's "scheme state" setter.
func (r *URL) SetProtocol(value string) error {
	return r.reparse(value+":", stateSchemeStart)
}

// SetUsername implements the username setter: § 4.12 says this never
// re-enters the state machine, since only the userinfo percent-encode
// set needs applying.
func (r *URL) SetUsername(value string) error {
	if !r.HasHost() || r.CannotBeABaseURL || r.Scheme == "file" {
		return newParseErr(KindCannotHaveUsernamePasswordOrPort, value, "cannot set username")
	}
	r.Username = percentEncodeString(value, userinfoPercentEncodeSet)
	return nil
}

// SetPassword implements the password setter.
func (r *URL) SetPassword(value string) error {
	if !r.HasHost() || r.CannotBeABaseURL || r.Scheme == "file" {
		return newParseErr(KindCannotHaveUsernamePasswordOrPort, value, "cannot set password")
	}
	r.Password = percentEncodeString(value, userinfoPercentEncodeSet)
	return nil
}

// SetHost implements the host setter (host state).
func (r *URL) SetHost(value string) error {
	if r.CannotBeABaseURL {
		return newParseErr(KindCannotBeABaseURL, value, "cannot set host on an opaque-path URL")
	}
	return r.reparse(value, stateHost)
}

// SetHostname implements the hostname setter (hostname state), which
// stops before consuming a port the way SetHost does not.
func (r *URL) SetHostname(value string) error {
	if r.CannotBeABaseURL {
		return newParseErr(KindCannotBeABaseURL, value, "cannot set hostname on an opaque-path URL")
	}
	return r.reparse(value, stateHostname)
}

// SetPort implements the port setter. An empty value clears the port
// rather than reparsing, per § 4.12.
func (r *URL) SetPort(value string) error {
	if !r.HasHost() || r.CannotBeABaseURL || r.Scheme == "file" {
		return newParseErr(KindCannotHaveUsernamePasswordOrPort, value, "cannot set port")
	}
	if value == "" {
		r.Port = nil
		return nil
	}
	return r.reparse(value, statePort)
}

// SetPathname implements the pathname setter.
func (r *URL) SetPathname(value string) error {
	if r.CannotBeABaseURL {
		return newParseErr(KindCannotBeABaseURL, value, "cannot set pathname on an opaque-path URL")
	}
	r.Path = nil
	return r.reparse(value, statePathStart)
}

// SetSearch implements the search setter. An empty value clears the
// query, matching "delete query" in § 4.12.
func (r *URL) SetSearch(value string) error {
	if value == "" {
		r.Query = nil
		return nil
	}
	value = trimPfx(value, "?")
	r.Query = strPtr("")
	return r.reparse(value, stateQuery)
}

// SetHash implements the hash (fragment) setter. An empty value clears
// the fragment.
func (r *URL) SetHash(value string) error {
	if value == "" {
		r.Fragment = nil
		return nil
	}
	value = trimPfx(value, "#")
	r.Fragment = strPtr("")
	return r.reparse(value, stateFragment)
}

// reparse re-enters the state machine at the given start state with r
// as the URL being mutated in place, the shape every § 4.12 setter
// shares: parse input with state override set to start and this URL
// record, discarding nothing but replacing fields the traversed states
// touch.
func (r *URL) reparse(input string, start state) error {
	ps := &parserState{
		url:              r,
		base:             nil,
		runes:            []rune(input),
		stateOverride:    start,
		hasStateOverride: true,
	}
	st := start
	for {
		c, eof := ps.at(ps.pointer)
		next, err := defaultParser.step(st, c, eof, ps)
		if err != nil {
			return err
		}
		st = next
		if st == stateTerminate {
			return nil
		}
		ps.pointer++
		// See basicParse: a multi-code-point rewind (authority
		// backtracking into host, for one) can land back inside
		// bounds even though this iteration's c was EOF, so the
		// pointer position after the increment is what decides
		// termination, not the eof flag captured before step ran.
		if ps.pointer > len(ps.runes) {
			return nil
		}
	}
}
