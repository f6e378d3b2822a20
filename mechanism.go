package spf

import (
	"net/netip"
	"strings"
)

// Payload is the set of value types a mechanism can carry: free text
// (a domain, possibly with a trailing "/prefixlen") or a validated IP
// network.
type Payload interface {
	~string | netip.Prefix
}

// Mechanism is a single directive: a kind, a qualifier and an optional
// payload. The payload type is fixed by the kind family: domain-valued
// kinds carry strings, ip4/ip6 carry netip.Prefix networks.
type Mechanism[T Payload] struct {
	kind      Kind
	qualifier Qualifier
	value     T
	hasValue  bool
}

// NewMechanism creates a mechanism without any validation. Validation
// happens at the classification stage; prefer the per-kind factories.
func NewMechanism[T Payload](kind Kind, qualifier Qualifier, value T) Mechanism[T] {
	return Mechanism[T]{kind: kind, qualifier: qualifier, value: value, hasValue: true}
}

// newBare creates a mechanism with no payload.
func newBare[T Payload](kind Kind, qualifier Qualifier) Mechanism[T] {
	return Mechanism[T]{kind: kind, qualifier: qualifier}
}

// NewRedirect creates a redirect= mechanism for the given domain.
func NewRedirect(q Qualifier, domain string) Mechanism[string] {
	return NewMechanism(KindRedirect, q, domain)
}

// NewA creates an "a" mechanism. An empty value yields the bare form.
func NewA(q Qualifier, value string) Mechanism[string] {
	if value == "" {
		return newBare[string](KindA, q)
	}
	return NewMechanism(KindA, q, value)
}

// NewMX creates an "mx" mechanism. An empty value yields the bare form.
func NewMX(q Qualifier, value string) Mechanism[string] {
	if value == "" {
		return newBare[string](KindMX, q)
	}
	return NewMechanism(KindMX, q, value)
}

// NewInclude creates an include: mechanism for the given domain.
func NewInclude(q Qualifier, domain string) Mechanism[string] {
	return NewMechanism(KindInclude, q, domain)
}

// NewPtr creates a "ptr" mechanism. An empty domain yields the bare form.
func NewPtr(q Qualifier, domain string) Mechanism[string] {
	if domain == "" {
		return newBare[string](KindPtr, q)
	}
	return NewMechanism(KindPtr, q, domain)
}

// NewExists creates an exists: mechanism for the given domain.
func NewExists(q Qualifier, domain string) Mechanism[string] {
	return NewMechanism(KindExists, q, domain)
}

// NewAll creates an "all" mechanism.
func NewAll(q Qualifier) Mechanism[string] {
	return newBare[string](KindAll, q)
}

// NewIP creates an ip4: or ip6: mechanism, selecting the kind from the
// network's address family.
func NewIP(q Qualifier, network netip.Prefix) Mechanism[netip.Prefix] {
	if network.Addr().Is4() {
		return NewIP4(q, network)
	}
	return NewIP6(q, network)
}

// NewIP4 creates an ip4: mechanism.
func NewIP4(q Qualifier, network netip.Prefix) Mechanism[netip.Prefix] {
	return NewMechanism(KindIP4, q, network)
}

// NewIP6 creates an ip6: mechanism.
func NewIP6(q Qualifier, network netip.Prefix) Mechanism[netip.Prefix] {
	return NewMechanism(KindIP6, q, network)
}

// Kind returns the mechanism's kind.
func (m Mechanism[T]) Kind() Kind { return m.kind }

// Qualifier returns the mechanism's qualifier.
func (m Mechanism[T]) Qualifier() Qualifier { return m.qualifier }

// Value returns the payload and whether one is present.
func (m Mechanism[T]) Value() (T, bool) { return m.value, m.hasValue }

// IsPass reports whether the qualifier is Pass.
func (m Mechanism[T]) IsPass() bool { return m.qualifier == Pass }

// IsFail reports whether the qualifier is Fail.
func (m Mechanism[T]) IsFail() bool { return m.qualifier == Fail }

// IsSoftFail reports whether the qualifier is SoftFail.
func (m Mechanism[T]) IsSoftFail() bool { return m.qualifier == SoftFail }

// IsNeutral reports whether the qualifier is Neutral.
func (m Mechanism[T]) IsNeutral() bool { return m.qualifier == Neutral }

// Raw returns the payload's textual form, or the kind's bare prefix
// text when no payload is present: a bare "a" mechanism's raw value is
// the literal "a".
func (m Mechanism[T]) Raw() string {
	if !m.hasValue {
		return m.kind.String()
	}
	return payloadText(m.value)
}

// String renders the mechanism in canonical text form: qualifier
// prefix (omitted for Pass), kind prefix, then the payload with a ":"
// inserted where the kind's prefix does not already carry a delimiter.
// A and MX skip the ":" when the payload is the CIDR-only shorthand
// ("a/24").
func (m Mechanism[T]) String() string {
	var b strings.Builder
	b.WriteString(m.qualifier.String())
	b.WriteString(m.kind.String())
	if m.hasValue {
		s := payloadText(m.value)
		switch {
		case m.kind.IsA() || m.kind.IsMX():
			if s != "" && !strings.HasPrefix(s, "/") {
				b.WriteByte(':')
			}
		case m.kind.IsPtr():
			if s != "" {
				b.WriteByte(':')
			}
		}
		b.WriteString(s)
	}
	return b.String()
}

// Network returns the payload of an IP mechanism. The zero Prefix is
// returned for mechanisms without a payload.
func (m Mechanism[T]) Network() netip.Prefix {
	if p, ok := any(m.value).(netip.Prefix); ok && m.hasValue {
		return p
	}
	return netip.Prefix{}
}

// payloadText renders a payload value as record text.
func payloadText[T Payload](v T) string {
	switch p := any(v).(type) {
	case string:
		return p
	case netip.Prefix:
		return p.String()
	}
	return ""
}
