package whatwgurl

/*
parser_options.go mirrors github.com/nlnwa/whatwg-url/canon's
CanonParserOption / funcCanonParserOption pairing: a small interface
plus a function type that implements it, so NewParser(opts...) can take
a variadic list of option values built from ordinary functions rather
than requiring callers to construct a config struct by hand.
*/

// ParserOption configures a Parser, § F.3.
type ParserOption interface {
	apply(*Parser)
}

type funcParserOption func(*Parser)

func (f funcParserOption) apply(p *Parser) { f(p) }

// WithReportValidationErrors makes the parser record § 7 validation
// errors (non-fatal) instead of silently ignoring them. The recorded
// flag is surfaced through ParseVerbose/ParseRefVerbose; Parse/ParseRef
// discard it.
func WithReportValidationErrors(report bool) ParserOption {
	return funcParserOption(func(p *Parser) { p.ReportValidationErrors = report })
}

// WithValidationErrorsFatal escalates every validation error to a fatal
// parse error -- useful for strict conformance testing, never for
// parsing URLs harvested from the wild.
func WithValidationErrorsFatal(fatal bool) ParserOption {
	return funcParserOption(func(p *Parser) { p.ValidationErrorsFatal = fatal })
}

// WithIDNACheckBidi toggles RFC 5893 bidi domain-label validation for
// special-scheme hosts, off by default. The flag is threaded through to
// validateLabel's reserved bidi branch, which currently accepts every
// label.
func WithIDNACheckBidi(enabled bool) ParserOption {
	return funcParserOption(func(p *Parser) { p.CheckBidi = enabled })
}

// WithIDNACheckJoiners toggles RFC 5892 Appendix A ZWJ/ZWNJ
// context-joiner validation for special-scheme hosts, off by default.
// Like WithIDNACheckBidi, the flag reaches validateLabel's reserved
// joiner branch, which currently accepts every label.
func WithIDNACheckJoiners(enabled bool) ParserOption {
	return funcParserOption(func(p *Parser) { p.CheckJoiners = enabled })
}
