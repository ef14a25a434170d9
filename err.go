package whatwgurl

/*
err.go defines the parse-error taxonomy of § 7: a Kind enumeration and a
*ParseError wrapper built directly, the way the rest of this package
favors a plain struct over an error-wrapping framework.
*/

// Kind identifies one of the fatal parse-error conditions of § 7. A Kind
// is carried by every *ParseError so callers can switch on it instead of
// string-matching Error().
type Kind uint8

const (
	// KindNone is the zero Kind; never attached to a real error.
	KindNone Kind = iota
	KindInvalidSchemeCharacter
	KindNotAnAbsoluteURLWithFragment
	KindCannotOverrideScheme
	KindEmptyHostname
	KindInvalidIPv4Address
	KindInvalidIPv6Address
	KindForbiddenHostPoint
	KindCannotDecodeHostPoint
	KindDomainError
	KindCannotBeABaseURL
	KindCannotHaveUsernamePasswordOrPort
	KindInvalidPort
	KindOverflow
	KindBadInput
	KindIllegalByteSequence
)

var kindText = map[Kind]string{
	KindNone:                             "no error",
	KindInvalidSchemeCharacter:           "invalid scheme character",
	KindNotAnAbsoluteURLWithFragment:     "not an absolute URL with fragment",
	KindCannotOverrideScheme:             "cannot override scheme",
	KindEmptyHostname:                    "empty hostname",
	KindInvalidIPv4Address:               "invalid IPv4 address",
	KindInvalidIPv6Address:               "invalid IPv6 address",
	KindForbiddenHostPoint:               "forbidden host code point",
	KindCannotDecodeHostPoint:            "cannot decode host code point",
	KindDomainError:                      "domain error",
	KindCannotBeABaseURL:                 "cannot be a base URL",
	KindCannotHaveUsernamePasswordOrPort: "cannot have a username, password or port",
	KindInvalidPort:                      "invalid port",
	KindOverflow:                         "overflow",
	KindBadInput:                         "bad input",
	KindIllegalByteSequence:              "illegal byte sequence",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown error"
}

// ParseError is returned by every fallible entry point in this package.
// It always carries a non-zero Kind; Input, when non-empty, is the
// component string being processed at the point of failure.
type ParseError struct {
	Kind  Kind
	Input string
	msg   string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	s := e.Kind.String()
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.Input != "" {
		s += " (" + e.Input + ")"
	}
	return s
}

// IsZero returns a Boolean value indicative of a nil receiver state.
func (e *ParseError) IsZero() bool { return e == nil }

func newParseErr(k Kind, input, msg string) error {
	return &ParseError{Kind: k, Input: input, msg: msg}
}

// ErrorKind returns the Kind attached to err when err is a *ParseError,
// and KindNone when err is nil or any other error. A *ParseError wrapped
// inside another error is not unwrapped.
func ErrorKind(err error) Kind {
	if pe, ok := err.(*ParseError); ok && pe != nil {
		return pe.Kind
	}
	return KindNone
}
