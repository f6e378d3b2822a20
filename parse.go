package spf

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// maxRecordLength is the maximum number of characters a record string
// may hold.
const maxRecordLength = 255

// Parse deconstructs a single-line policy record into a Record. The
// source must start with "v=spf1" or an "spf2.0" prefix, be at most
// 255 characters long and contain no two consecutive whitespace
// characters; violating any of these fails the whole parse.
//
// Tokens are classified in a fixed priority order (version, redirect,
// include, exists, ip4, ip6, all, then the a/mx/ptr shapes).
// Unrecognized tokens are dropped silently. The only token-level
// failure that aborts the parse is an ip4:/ip6: literal that does not
// parse or whose address family contradicts its prefix.
func Parse(source string) (*Record, error) {
	return ParseWithCheck(source, nil)
}

// ParseWithCheck parses like Parse and additionally runs every
// discovered hostname through check. Hostnames the check rejects are
// accumulated in the record's warnings; they never fail the parse.
func ParseWithCheck(source string, check CheckFunc) (*Record, error) {
	if !strings.HasPrefix(source, versionV1) && !strings.HasPrefix(source, "spf2.0") {
		return nil, ErrInvalidSource
	}
	if len(source) > maxRecordLength {
		return nil, ErrSourceLengthExceeded
	}
	if hasDoubledWhitespace(source) {
		return nil, ErrWhiteSpaceSyntaxError
	}

	r := NewRecord()
	warn := func(host string) {
		if check != nil && !check(host) {
			r.warnings = append(r.warnings, host)
		}
	}

	for _, token := range strings.Fields(source) {
		switch {
		case isVersionToken(token):
			// Last marker wins when a line carries several.
			r.version = token

		case strings.Contains(token, "redirect="):
			m, _ := matchRedirect(token)
			warn(m.Raw())
			r.redirect = &m
			r.isRedirected = true

		case strings.Contains(token, "include:"):
			m, _ := matchDomainPrefixed(token, KindInclude)
			warn(m.Raw())
			r.include = append(r.include, m)

		case strings.Contains(token, "exists:"):
			m, _ := matchDomainPrefixed(token, KindExists)
			warn(m.Raw())
			r.exists = append(r.exists, m)

		case strings.Contains(token, "ip4:"):
			m, found, err := matchIP(token, KindIP4)
			if err != nil {
				return nil, wrapIPError(err)
			}
			if found {
				r.ip4 = append(r.ip4, m)
			}

		case strings.Contains(token, "ip6:"):
			m, found, err := matchIP(token, KindIP6)
			if err != nil {
				return nil, wrapIPError(err)
			}
			if found {
				r.ip6 = append(r.ip6, m)
			}

		case strings.HasSuffix(token, "all"):
			m, _ := matchAll(token)
			r.all = &m

		default:
			if m, ok := matchShape(token, KindA); ok {
				if v, has := m.Value(); has && !strings.HasPrefix(v, "/") {
					warn(hostBeforeSlash(v))
				}
				r.a = append(r.a, m)
			} else if m, ok := matchShape(token, KindMX); ok {
				if v, has := m.Value(); has && !strings.HasPrefix(v, "/") {
					warn(hostBeforeSlash(v))
				}
				r.mx = append(r.mx, m)
			} else if m, ok := matchShape(token, KindPtr); ok {
				if _, has := m.Value(); has {
					warn(m.Raw())
				}
				r.ptr = &m
			}
			// Anything else is an unknown directive and is dropped.
		}
	}

	r.wasParsed = true
	r.isValid = true
	r.fromSource = true
	r.source = source
	return r, nil
}

// wrapIPError classifies a matchIP failure: family mismatches keep
// their sentinel, anything else is an invalid literal.
func wrapIPError(err error) error {
	if isFamilyError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidIPAddr, err)
}

func isFamilyError(err error) bool {
	return errors.Is(err, ErrNotIP4Network) || errors.Is(err, ErrNotIP6Network)
}

// hasDoubledWhitespace reports whether s contains two or more
// consecutive whitespace characters anywhere.
func hasDoubledWhitespace(s string) bool {
	prev := false
	for _, c := range s {
		space := unicode.IsSpace(c)
		if space && prev {
			return true
		}
		prev = space
	}
	return false
}
