package spf

import "errors"

// Record-level parsing and validation errors.
var (
	// ErrInvalidSource is returned when the source string does not start
	// with a recognized version marker ("v=spf1" or an "spf2.0" prefix).
	ErrInvalidSource = errors.New("spf: source does not start with a recognized version")

	// ErrSourceLengthExceeded is returned when the source string is
	// longer than 255 characters.
	ErrSourceLengthExceeded = errors.New("spf: source exceeds 255 characters")

	// ErrWhiteSpaceSyntaxError is returned when the source contains two
	// or more consecutive whitespace characters.
	ErrWhiteSpaceSyntaxError = errors.New("spf: source contains consecutive whitespace characters")

	// ErrInvalidIPAddr is returned when an ip4: or ip6: token carries a
	// literal that does not parse as an IP network.
	ErrInvalidIPAddr = errors.New("spf: invalid IP address")

	// ErrHasNotBeenParsed is returned by Validate when a record built
	// from a source string was never parsed.
	ErrHasNotBeenParsed = errors.New("spf: record has not been parsed")

	// ErrRedirectWithAllMechanism is returned by Validate when both a
	// redirect and an all mechanism are present.
	ErrRedirectWithAllMechanism = errors.New("spf: redirect and all are mutually exclusive")

	// ErrLookupLimitExceeded is returned by Validate when evaluating the
	// record would require more than 10 DNS lookups.
	ErrLookupLimitExceeded = errors.New("spf: exceeded maximum DNS lookups")
)

// Mechanism construction errors.
var (
	// ErrInvalidMechanismFormat is returned when a token does not
	// conform to any mechanism format.
	ErrInvalidMechanismFormat = errors.New("spf: not a valid mechanism format")

	// ErrNotIP4Network is returned when an ip4: token carries a network
	// that is not IPv4.
	ErrNotIP4Network = errors.New("spf: not an IPv4 network")

	// ErrNotIP6Network is returned when an ip6: token carries a network
	// that is not IPv6.
	ErrNotIP6Network = errors.New("spf: not an IPv6 network")

	// ErrInvalidIPNetwork is returned when a string does not parse as an
	// IP network at all.
	ErrInvalidIPNetwork = errors.New("spf: not a valid IP network")
)
