package spf

// Kind identifies the directive type a mechanism represents.
type Kind int

const (
	// KindRedirect is the "redirect=" modifier.
	KindRedirect Kind = iota

	// KindA is the "a" mechanism.
	KindA

	// KindMX is the "mx" mechanism.
	KindMX

	// KindInclude is the "include:" mechanism.
	KindInclude

	// KindIP4 is the "ip4:" mechanism.
	KindIP4

	// KindIP6 is the "ip6:" mechanism.
	KindIP6

	// KindPtr is the "ptr" mechanism.
	KindPtr

	// KindExists is the "exists:" mechanism.
	KindExists

	// KindAll is the "all" mechanism.
	KindAll
)

// String returns the canonical text prefix for the kind. For kinds
// whose syntax embeds a delimiter (include:, exists:, ip4:, ip6:,
// redirect=) the delimiter is part of the prefix.
func (k Kind) String() string {
	switch k {
	case KindRedirect:
		return "redirect="
	case KindA:
		return "a"
	case KindMX:
		return "mx"
	case KindInclude:
		return "include:"
	case KindIP4:
		return "ip4:"
	case KindIP6:
		return "ip6:"
	case KindPtr:
		return "ptr"
	case KindExists:
		return "exists:"
	case KindAll:
		return "all"
	}
	return ""
}

// IsRedirect reports whether the kind is Redirect.
func (k Kind) IsRedirect() bool { return k == KindRedirect }

// IsA reports whether the kind is A.
func (k Kind) IsA() bool { return k == KindA }

// IsMX reports whether the kind is MX.
func (k Kind) IsMX() bool { return k == KindMX }

// IsInclude reports whether the kind is Include.
func (k Kind) IsInclude() bool { return k == KindInclude }

// IsIP4 reports whether the kind is IP4.
func (k Kind) IsIP4() bool { return k == KindIP4 }

// IsIP6 reports whether the kind is IP6.
func (k Kind) IsIP6() bool { return k == KindIP6 }

// IsIP reports whether the kind is IP4 or IP6.
func (k Kind) IsIP() bool { return k == KindIP4 || k == KindIP6 }

// IsPtr reports whether the kind is Ptr.
func (k Kind) IsPtr() bool { return k == KindPtr }

// IsExists reports whether the kind is Exists.
func (k Kind) IsExists() bool { return k == KindExists }

// IsAll reports whether the kind is All.
func (k Kind) IsAll() bool { return k == KindAll }
