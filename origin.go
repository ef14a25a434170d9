package whatwgurl

/*
origin.go implements § 4.10: computeOrigin derives the tuple (or
opaque) origin of a URL record, following the blank-schemes table and
falling back to an opaque origin for blob: URLs whose path doesn't
itself parse as a URL.
*/

var originTupleSchemes = map[string]bool{
	"ftp": true, "http": true, "https": true, "ws": true, "wss": true,
}

// computeOrigin implements the § 4.10 "origin" algorithm for a parsed
// URL record.
func computeOrigin(u URL) Origin {
	switch {
	case u.Scheme == "blob":
		if len(u.Path) > 0 {
			inner := u.Path[0]
			if parsed, err := NewParser().Parse(inner); err == nil {
				return computeOrigin(*parsed)
			}
		}
		return Origin{Opaque: true}
	case originTupleSchemes[u.Scheme]:
		return Origin{Scheme: u.Scheme, Host: u.Host, Port: copyIntPtr(u.Port)}
	case u.Scheme == "file":
		// file origins are left implementation-defined by the standard;
		// this package returns an opaque origin, matching how browsers
		// traditionally sandbox file: documents from one another.
		return Origin{Opaque: true}
	default:
		return Origin{Opaque: true}
	}
}

// Origin returns the tuple origin of r, § 4.10.
func (r URL) Origin() Origin { return computeOrigin(r) }
