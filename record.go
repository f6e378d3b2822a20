package spf

import (
	"net/netip"
	"strings"
)

// Recognized version strings.
const (
	versionV1         = "v=spf1"
	versionV2PRA      = "spf2.0/pra"
	versionV2MFrom    = "spf2.0/mfrom"
	versionV2PRAMFrom = "spf2.0/pra,mfrom"
	versionV2MFromPRA = "spf2.0/mfrom,pra"
)

// Record holds a single deconstructed policy record: a version tag,
// at most one redirect, ptr and all mechanism, and the ordered
// a/mx/include/ip4/ip6/exists groups. A Record is either populated in
// one pass by Parse or built up mechanism by mechanism; it is a plain
// value with no internal synchronization.
type Record struct {
	source       string
	version      string
	fromSource   bool
	redirect     *Mechanism[string]
	isRedirected bool
	a            []Mechanism[string]
	mx           []Mechanism[string]
	include      []Mechanism[string]
	ip4          []Mechanism[netip.Prefix]
	ip6          []Mechanism[netip.Prefix]
	ptr          *Mechanism[string]
	exists       []Mechanism[string]
	all          *Mechanism[string]
	wasParsed    bool
	wasValidated bool
	isValid      bool
	warnings     []string
}

// NewRecord creates an empty Record with all fields unset.
func NewRecord() *Record {
	return &Record{}
}

// SetV1 sets the version tag to "v=spf1".
func (r *Record) SetV1() { r.version = versionV1 }

// SetV2PRA sets the version tag to "spf2.0/pra".
func (r *Record) SetV2PRA() { r.version = versionV2PRA }

// SetV2MFrom sets the version tag to "spf2.0/mfrom".
func (r *Record) SetV2MFrom() { r.version = versionV2MFrom }

// SetV2PRAMFrom sets the version tag to "spf2.0/pra,mfrom".
func (r *Record) SetV2PRAMFrom() { r.version = versionV2PRAMFrom }

// SetV2MFromPRA sets the version tag to "spf2.0/mfrom,pra".
func (r *Record) SetV2MFromPRA() { r.version = versionV2MFromPRA }

// Version returns the version tag.
func (r *Record) Version() string { return r.version }

// IsV1 reports whether the version tag is the v1 marker.
func (r *Record) IsV1() bool { return strings.Contains(r.version, versionV1) }

// IsV2 reports whether the version tag is an spf2.0 marker.
func (r *Record) IsV2() bool { return strings.HasPrefix(r.version, "spf2.0") }

// Source returns the source string the record was parsed from, or ""
// for records built programmatically.
func (r *Record) Source() string { return r.source }

// IsRedirect reports whether a redirect mechanism is present.
func (r *Record) IsRedirect() bool { return r.isRedirected }

// Redirect returns the redirect mechanism, or nil.
func (r *Record) Redirect() *Mechanism[string] { return r.redirect }

// A returns the "a" group in first-seen order, or nil.
func (r *Record) A() []Mechanism[string] { return r.a }

// MX returns the "mx" group in first-seen order, or nil.
func (r *Record) MX() []Mechanism[string] { return r.mx }

// Includes returns the include: group in first-seen order, or nil.
func (r *Record) Includes() []Mechanism[string] { return r.include }

// IP4 returns the ip4: group in first-seen order, or nil.
func (r *Record) IP4() []Mechanism[netip.Prefix] { return r.ip4 }

// IP6 returns the ip6: group in first-seen order, or nil.
func (r *Record) IP6() []Mechanism[netip.Prefix] { return r.ip6 }

// Exists returns the exists: group in first-seen order, or nil.
func (r *Record) Exists() []Mechanism[string] { return r.exists }

// Ptr returns the ptr mechanism, or nil.
func (r *Record) Ptr() *Mechanism[string] { return r.ptr }

// All returns the all mechanism, or nil.
func (r *Record) All() *Mechanism[string] { return r.all }

// Warnings returns the hostnames that failed the optional validity
// check during parsing, or nil.
func (r *Record) Warnings() []string { return r.warnings }

// HasWarnings reports whether parsing accumulated any warnings.
func (r *Record) HasWarnings() bool { return len(r.warnings) > 0 }

// IsValid reports whether the record is known valid. It is false for
// records that were neither parsed nor validated.
func (r *Record) IsValid() bool {
	if r.wasParsed || r.wasValidated {
		return r.isValid
	}
	return false
}

// AppendMechanism appends a text-valued mechanism to the record.
// Redirect and all are mutually exclusive: appending a redirect drops
// any pending all, and appending an all while a redirect is set is a
// no-op. Redirect, ptr and all overwrite any previous value of the
// same kind. IP-valued kinds are ignored; use AppendIPMechanism.
func (r *Record) AppendMechanism(m Mechanism[string]) {
	switch m.Kind() {
	case KindRedirect:
		r.redirect = &m
		r.isRedirected = true
		r.all = nil
	case KindA:
		r.a = append(r.a, m)
	case KindMX:
		r.mx = append(r.mx, m)
	case KindInclude:
		r.include = append(r.include, m)
	case KindExists:
		r.exists = append(r.exists, m)
	case KindPtr:
		r.ptr = &m
	case KindAll:
		if r.redirect == nil {
			r.all = &m
		}
	}
}

// AppendIPMechanism appends an ip4: or ip6: mechanism to the record.
// Mechanisms of any other kind are ignored.
func (r *Record) AppendIPMechanism(m Mechanism[netip.Prefix]) {
	switch m.Kind() {
	case KindIP4:
		r.ip4 = append(r.ip4, m)
	case KindIP6:
		r.ip6 = append(r.ip6, m)
	}
}

// ClearMechanism removes every mechanism of the given kind.
func (r *Record) ClearMechanism(kind Kind) {
	switch kind {
	case KindRedirect:
		r.redirect = nil
		r.isRedirected = false
	case KindA:
		r.a = nil
	case KindMX:
		r.mx = nil
	case KindInclude:
		r.include = nil
	case KindIP4:
		r.ip4 = nil
	case KindIP6:
		r.ip6 = nil
	case KindExists:
		r.exists = nil
	case KindPtr:
		r.ptr = nil
	case KindAll:
		r.all = nil
	}
}
