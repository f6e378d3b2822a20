package dns

import (
	"context"
	"slices"
)

// MockResolver is a Resolver used for testing.
// Set TXT records in the TXT field, which maps FQDNs (with trailing
// dot) to record strings.
type MockResolver struct {
	TXT map[string][]string

	// Fail contains names that will return a temporary error
	// (SERVFAIL), as FQDNs with trailing dot.
	Fail []string

	// AllAuthentic sets the default value for Authentic in responses.
	// Overridden by the Authentic and Inauthentic lists.
	AllAuthentic bool

	// Authentic contains names whose responses have Authentic=true.
	Authentic []string

	// Inauthentic contains names whose responses have Authentic=false.
	Inauthentic []string
}

var _ Resolver = MockResolver{}

// LookupTXT returns the configured TXT records for the given name.
func (r MockResolver) LookupTXT(ctx context.Context, name string) (Result, error) {
	fqdn := ensureAbsolute(name)
	result := Result{Authentic: r.AllAuthentic}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if slices.Contains(r.Fail, fqdn) {
		return result, ErrServFail
	}
	if slices.Contains(r.Authentic, fqdn) {
		result.Authentic = true
	}
	if slices.Contains(r.Inauthentic, fqdn) {
		result.Authentic = false
	}

	records, ok := r.TXT[fqdn]
	if !ok || len(records) == 0 {
		return result, ErrNotFound
	}

	result.Records = records
	return result, nil
}
