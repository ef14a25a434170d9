package whatwgurl

/*
serializer.go implements § 4.5, the URL serializer: String() on URL
reconstructs a URL string from a record with an incremental
strings.Builder, writing each delimiter only when the component it
introduces is present.
*/

// String implements § 4.5's URL serializer.
func (r URL) String() string { return r.serialize(false) }

// StringExcludingFragment is the serializer's exclude-fragment mode,
// used where two URLs are compared without regard to their fragments.
func (r URL) StringExcludingFragment() string { return r.serialize(true) }

func (r URL) serialize(excludeFragment bool) string {
	b := newStrBuilder()
	b.WriteString(r.Scheme)
	b.WriteByte(':')

	if r.Host.Kind != HostNone {
		b.WriteString("//")
		if r.IncludesCredentials() {
			b.WriteString(r.Username)
			if r.Password != "" {
				b.WriteByte(':')
				b.WriteString(r.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(r.Host.String())
		if r.Port != nil {
			b.WriteByte(':')
			b.WriteString(itoa(*r.Port))
		}
	} else if r.Scheme == "file" {
		b.WriteString("//")
	}

	if r.CannotBeABaseURL {
		if len(r.Path) > 0 {
			b.WriteString(r.Path[0])
		}
	} else {
		for _, seg := range r.Path {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}

	if r.Query != nil {
		b.WriteByte('?')
		b.WriteString(*r.Query)
	}
	if !excludeFragment && r.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*r.Fragment)
	}

	return b.String()
}

// Href is an alias for String kept for callers porting code from a
// DOM-flavored URL API, where the serialization is exposed as a field
// named href rather than a Stringer method.
func (r URL) Href() string { return r.String() }

// serializePathForDisplay renders the record's path without percent-
// decoding; it backs the Pathname accessor in url.go.
func (r URL) serializePathForDisplay() string {
	if r.CannotBeABaseURL {
		if len(r.Path) > 0 {
			return r.Path[0]
		}
		return ""
	}
	return "/" + join(r.Path, "/")
}

// unicodeSerialization implements the "URL-to-Unicode" presentation
// helper alluded to in § 4.8: same as String, but with a domain host
// rendered through domain-to-Unicode instead of its ASCII form.
func (r URL) unicodeSerialization() string {
	if r.Host.Kind != HostDomain {
		return r.String()
	}
	uni, err := domainToUnicode(r.Host.Domain, idnaOptions{})
	if err != nil {
		return r.String()
	}
	withUnicodeHost := r
	withUnicodeHost.Host = Host{Kind: HostDomain, Domain: uni}
	return withUnicodeHost.String()
}
