// Package dns provides the TXT resolution layer used to discover
// policy records, with optional DNSSEC validation via
// github.com/miekg/dns and a stdlib fallback.
package dns

import (
	"context"
	"errors"
	"strings"
)

// DNS lookup errors.
var (
	// ErrNotFound indicates the name does not exist (NXDOMAIN) or has
	// no records of the requested type.
	ErrNotFound = errors.New("dns: no such record")

	// ErrServFail indicates the upstream resolver reported a failure.
	ErrServFail = errors.New("dns: server failure")

	// ErrRefused indicates the upstream resolver refused the query.
	ErrRefused = errors.New("dns: query refused")

	// ErrBogus indicates DNSSEC validation failed upstream.
	ErrBogus = errors.New("dns: DNSSEC validation failed")

	// ErrTimeout indicates the query timed out.
	ErrTimeout = errors.New("dns: query timed out")
)

// Result holds the TXT strings returned for a name.
type Result struct {
	// Records are the TXT strings, with multi-part strings joined.
	Records []string

	// Authentic indicates the response was DNSSEC-validated.
	Authentic bool
}

// Resolver retrieves TXT records for a domain.
type Resolver interface {
	// LookupTXT retrieves TXT records for the given name.
	LookupTXT(ctx context.Context, name string) (Result, error)
}

// ensureAbsolute ensures the name ends with a dot (FQDN format).
func ensureAbsolute(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}
