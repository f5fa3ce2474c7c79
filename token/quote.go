package token

import (
	"strings"
)

const (
	structural   = " \t\n\v\f\r'\":{}[],&*#?"
	reservedLead = "-?|<>=!%@`"
)

// QuoteDouble double quotes v, escaping ", LF and CR.
func QuoteDouble(v string) string {
	v = strings.ReplaceAll(v, `"`, `\"`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	v = strings.ReplaceAll(v, "\r", `\r`)
	return `"` + v + `"`
}

// QuoteSingle single quotes v, doubling interior quotes.
func QuoteSingle(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// NeedsQuote reports whether v contains a structurally significant
// character or starts with a reserved indicator, so that it cannot be
// written bare.
func NeedsQuote(v string) bool {
	if strings.ContainsAny(v, structural) {
		return true
	}
	return v != "" && strings.IndexByte(reservedLead, v[0]) != -1
}

// HasLineBreak reports whether v must be double quoted.
func HasLineBreak(v string) bool {
	return strings.ContainsAny(v, "\n\r")
}
