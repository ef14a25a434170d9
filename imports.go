package whatwgurl

import (
	"strconv"
	"strings"
)

/*
imports.go aliases frequently used standard library functions to short
package-level variables, following the convention carried throughout this
package of keeping call sites free of repeated stdlib import qualifiers.
*/

var (
	fmtInt   func(int64, int) string              = strconv.FormatInt
	atoi     func(string) (int, error)             = strconv.Atoi
	itoa     func(int) string                      = strconv.Itoa
	puint    func(string, int, int) (uint64, error) = strconv.ParseUint
	fuint    func(uint64, int) string              = strconv.FormatUint
	cntns    func(string, string) bool             = strings.Contains
	trimS    func(string) string                   = strings.TrimSpace
	trimL    func(string, string) string           = strings.TrimLeft
	trimR    func(string, string) string           = strings.TrimRight
	trimPfx  func(string, string) string           = strings.TrimPrefix
	trimSfx  func(string, string) string           = strings.TrimSuffix
	hasPfx   func(string, string) bool             = strings.HasPrefix
	hasSfx   func(string, string) bool             = strings.HasSuffix
	join     func([]string, string) string         = strings.Join
	split    func(string, string) []string         = strings.Split
	splitN   func(string, string, int) []string    = strings.SplitN
	stridx   func(string, string) int              = strings.Index
	strlidx  func(string, string) int              = strings.LastIndex
	repAll   func(string, string, string) string   = strings.ReplaceAll
	streqf   func(string, string) bool             = strings.EqualFold
	uc       func(string) string                   = strings.ToUpper
	lc       func(string) string                   = strings.ToLower
)

func newStrBuilder() strings.Builder {
	return strings.Builder{}
}

func streq(a, b string) bool {
	return a == b
}

// splitAndTrim splits a string by the given separator and trims spaces
// from each slice element, dropping any element left empty.
func splitAndTrim(s, sep string) []string {
	raw := split(s, sep)
	var parts []string
	for _, part := range raw {
		if trimmed := trimS(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
