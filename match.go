package spf

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// Token classification is an ordered chain of matchers, tried
// first-match-wins in the order Parse applies them. The token shapes
// overlap (a token containing "redirect=" must not fall through to the
// plain-text matchers), so the order is load-bearing.

// isVersionToken reports whether the token is a version marker.
func isVersionToken(token string) bool {
	return strings.Contains(token, "v=spf1") || strings.HasPrefix(token, "spf2.0")
}

// matchRedirect matches a token containing "redirect=". The payload is
// everything after the rightmost "=".
func matchRedirect(token string) (Mechanism[string], bool) {
	if !strings.Contains(token, "redirect=") {
		return Mechanism[string]{}, false
	}
	q, rest := splitQualifier(token)
	i := strings.LastIndex(rest, "=")
	return NewRedirect(q, rest[i+1:]), true
}

// matchDomainPrefixed matches include: and exists: tokens. The payload
// is everything after the rightmost ":".
func matchDomainPrefixed(token string, kind Kind) (Mechanism[string], bool) {
	if !strings.Contains(token, kind.String()) {
		return Mechanism[string]{}, false
	}
	q, rest := splitQualifier(token)
	i := strings.LastIndex(rest, ":")
	return NewMechanism(kind, q, rest[i+1:]), true
}

// matchIP matches an ip4: or ip6: token. found is false when the
// qualifier-stripped token does not start with the kind's prefix. A
// literal that does not parse, or one whose address family contradicts
// the kind, is a hard error.
func matchIP(token string, kind Kind) (m Mechanism[netip.Prefix], found bool, err error) {
	q, rest := splitQualifier(token)
	raw, found := strings.CutPrefix(rest, kind.String())
	if !found {
		return m, false, nil
	}
	network, err := parseNetwork(raw)
	if err != nil {
		return m, true, err
	}
	if kind.IsIP4() && !network.Addr().Is4() {
		return m, true, fmt.Errorf("%w: %s", ErrNotIP4Network, network)
	}
	if kind.IsIP6() && network.Addr().Is4() {
		return m, true, fmt.Errorf("%w: %s", ErrNotIP6Network, network)
	}
	return NewMechanism(kind, q, network), true, nil
}

// matchAll matches any token ending in the literal "all".
func matchAll(token string) (Mechanism[string], bool) {
	if !strings.HasSuffix(token, "all") {
		return Mechanism[string]{}, false
	}
	q, _ := splitQualifier(token)
	return NewAll(q), true
}

// matchShape matches the a/mx/ptr grammar: an optional qualifier, the
// keyword, then an optional ":domain" and, for a and mx only, an
// optional "/prefixlen" (possibly with no domain at all, as in "a/24").
func matchShape(token string, kind Kind) (Mechanism[string], bool) {
	q, rest := splitQualifier(token)
	tail, found := strings.CutPrefix(rest, kind.String())
	if !found {
		return Mechanism[string]{}, false
	}
	switch {
	case tail == "":
		return newBare[string](kind, q), true
	case tail[0] == ':':
		payload := tail[1:]
		if payload == "" || payload[0] == '/' {
			return Mechanism[string]{}, false
		}
		if i := strings.LastIndex(payload, "/"); i >= 0 {
			if kind.IsPtr() || !validPrefixLen(payload[i+1:]) {
				return Mechanism[string]{}, false
			}
		}
		return NewMechanism(kind, q, payload), true
	case tail[0] == '/':
		// CIDR-only shorthand, a/24. Not valid for ptr.
		if kind.IsPtr() || !validPrefixLen(tail[1:]) {
			return Mechanism[string]{}, false
		}
		return NewMechanism(kind, q, tail), true
	}
	return Mechanism[string]{}, false
}

// validPrefixLen reports whether s is 1 to 3 decimal digits.
func validPrefixLen(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseNetwork parses an IP network literal. A bare address is widened
// to a full-length prefix (/32 or /128).
func parseNetwork(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		return netip.ParsePrefix(s)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// hostBeforeSlash returns the hostname part of a payload, dropping a
// trailing "/prefixlen" if one is present.
func hostBeforeSlash(s string) string {
	if i := strings.Index(s, "/"); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseMechanism classifies a single token as one of the text-valued
// mechanisms (redirect, include, exists, all, a, mx, ptr). Tokens that
// match none of those shapes, including ip4:/ip6: tokens, return
// ErrInvalidMechanismFormat carrying the offending token.
func ParseMechanism(token string) (Mechanism[string], error) {
	if m, ok := matchRedirect(token); ok {
		return m, nil
	}
	if m, ok := matchDomainPrefixed(token, KindInclude); ok {
		return m, nil
	}
	if m, ok := matchDomainPrefixed(token, KindExists); ok {
		return m, nil
	}
	if m, ok := matchAll(token); ok {
		return m, nil
	}
	for _, kind := range []Kind{KindA, KindMX, KindPtr} {
		if m, ok := matchShape(token, kind); ok {
			return m, nil
		}
	}
	return Mechanism[string]{}, fmt.Errorf("%w: %q", ErrInvalidMechanismFormat, token)
}

// ParseIPMechanism classifies a single token as an ip4: or ip6:
// mechanism. Tokens without either prefix return
// ErrInvalidMechanismFormat; unparseable literals return
// ErrInvalidIPNetwork; a family mismatch returns ErrNotIP4Network or
// ErrNotIP6Network.
func ParseIPMechanism(token string) (Mechanism[netip.Prefix], error) {
	for _, kind := range []Kind{KindIP4, KindIP6} {
		m, found, err := matchIP(token, kind)
		if !found {
			continue
		}
		if err != nil {
			if errors.Is(err, ErrNotIP4Network) || errors.Is(err, ErrNotIP6Network) {
				return Mechanism[netip.Prefix]{}, err
			}
			return Mechanism[netip.Prefix]{}, fmt.Errorf("%w: %v", ErrInvalidIPNetwork, err)
		}
		return m, nil
	}
	return Mechanism[netip.Prefix]{}, fmt.Errorf("%w: %q", ErrInvalidMechanismFormat, token)
}
