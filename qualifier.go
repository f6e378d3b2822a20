package spf

// Qualifier sets the disposition a mechanism carries when it matches.
//
// The default is Pass, which has no text encoding: "mx" and "+mx" are
// the same directive, and Pass is always elided when rendering.
type Qualifier int

const (
	// Pass ("+", usually elided) authorizes the matched sender.
	Pass Qualifier = iota

	// Fail ("-") explicitly rejects the matched sender.
	Fail

	// SoftFail ("~") marks the matched sender as probably unauthorized.
	SoftFail

	// Neutral ("?") makes no statement about the matched sender.
	Neutral
)

// String returns the one-character text encoding of the qualifier.
// Pass returns the empty string since it is elided in record text.
func (q Qualifier) String() string {
	switch q {
	case Fail:
		return "-"
	case SoftFail:
		return "~"
	case Neutral:
		return "?"
	}
	return ""
}

// qualifierFor maps a leading token character to its qualifier.
// Unrecognized characters map to Pass; the second return reports
// whether the character was an explicit qualifier and should be
// stripped from the token.
func qualifierFor(c byte) (Qualifier, bool) {
	switch c {
	case '+':
		return Pass, true
	case '-':
		return Fail, true
	case '~':
		return SoftFail, true
	case '?':
		return Neutral, true
	}
	return Pass, false
}

// splitQualifier strips the qualifier character from the front of a
// token, if one is present, and returns the qualifier together with
// the remainder of the token.
func splitQualifier(token string) (Qualifier, string) {
	if token == "" {
		return Pass, token
	}
	q, explicit := qualifierFor(token[0])
	if explicit {
		return q, token[1:]
	}
	return Pass, token
}
