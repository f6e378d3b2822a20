package spf

import (
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/publicsuffix"
)

// CheckFunc decides whether a hostname discovered during parsing is
// syntactically acceptable. A false result adds the hostname to the
// record's warnings; it never fails the parse.
//
// Implementations are free to do I/O, but the tokenizer calls them
// synchronously, so a blocking check blocks the parse.
type CheckFunc func(hostname string) bool

// ValidHostname reports whether s is a syntactically valid DNS
// hostname: within DNS length limits and made of letters, digits,
// hyphens and underscores (labels like _spf are common in policy
// records). Macro characters are not accepted.
func ValidHostname(s string) bool {
	s = strings.TrimSuffix(strings.ToLower(s), ".")
	if s == "" {
		return false
	}
	if _, ok := dns.IsDomainName(s); !ok {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if !validLabel(label) {
			return false
		}
	}
	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// ValidRegistrableHostname is a stricter CheckFunc: the hostname must
// be valid per ValidHostname and sit under a suffix in the ICANN
// section of the Public Suffix List. Bare suffixes ("com", "co.uk")
// and made-up TLDs are rejected.
func ValidRegistrableHostname(s string) bool {
	s = strings.TrimSuffix(strings.ToLower(s), ".")
	if !ValidHostname(s) {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(s)
	return icann && s != suffix
}
