package whatwgurl

/*
record.go defines the URL record of § 4.2 and its handful of derived
predicates: a plain struct, built by the fallible Parse/ParseRef
constructors, with String / IsZero / Clone and value-receiver accessors
that never panic on a zero value.
*/

// URL is the parsed representation of a URL string, § 4.2.
type URL struct {
	Scheme            string
	Username          string
	Password          string
	Host              Host
	Port              *int
	Path              []string // opaque path when CannotBeABaseURL; segments otherwise
	Query             *string
	Fragment          *string
	CannotBeABaseURL  bool
}

// IsZero reports whether r is the unparsed zero value.
func (r URL) IsZero() bool { return r.Scheme == "" && r.Host.IsZero() && len(r.Path) == 0 }

// IsSpecial reports whether the record's scheme is one of § 4.1's
// special schemes (ftp, file, http, https, ws, wss).
func (r URL) IsSpecial() bool { return isSpecialScheme(r.Scheme) }

// HasOpaquePath reports whether the record's path is a single opaque
// string rather than a list of path segments, § 4.2.
func (r URL) HasOpaquePath() bool { return r.CannotBeABaseURL }

// IncludesCredentials implements § 4.2's "includes credentials"
// predicate: true when either username or password is non-empty.
func (r URL) IncludesCredentials() bool {
	return r.Username != "" || r.Password != ""
}

// HasHost implements the "host is null" check several setters in
// url.go rely on. A present-but-empty host (HostEmpty) counts as
// having a host; only the absent HostNone does not.
func (r URL) HasHost() bool { return !r.Host.IsZero() }

// PortOrDefault returns the explicit port if set, or the scheme's
// default port otherwise; ok is false when neither applies.
func (r URL) PortOrDefault() (port int, ok bool) {
	if r.Port != nil {
		return *r.Port, true
	}
	return defaultPortForScheme(r.Scheme)
}

// Clone deep-copies r, including its Port/Query/Fragment pointers and
// Path slice, so callers can mutate a returned URL without aliasing the
// receiver.
func (r URL) Clone() URL {
	c := r
	if r.Port != nil {
		p := *r.Port
		c.Port = &p
	}
	if r.Query != nil {
		q := *r.Query
		c.Query = &q
	}
	if r.Fragment != nil {
		f := *r.Fragment
		c.Fragment = &f
	}
	if r.Path != nil {
		c.Path = append([]string(nil), r.Path...)
	}
	return c
}

// Origin implements § 4.10's tuple origin, derived from a URL record by
// computeOrigin in origin.go.
type Origin struct {
	Opaque bool
	Scheme string
	Host   Host
	Port   *int
}

// IsZero reports whether o is the opaque origin.
func (o Origin) IsZero() bool { return o.Opaque }

// String serializes o per the "ASCII serialization of an origin"
// algorithm (the host is written in its ASCII form, as Host.String
// gives it), falling back to the literal "null" for an opaque origin.
func (o Origin) String() string {
	if o.Opaque {
		return "null"
	}
	s := o.Scheme + "://" + o.Host.String()
	if o.Port != nil {
		s += ":" + itoa(*o.Port)
	}
	return s
}
