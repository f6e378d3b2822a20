// Package lookup discovers the policy record published for a domain.
//
// It fetches the domain's TXT records, selects the one carrying a
// recognized version marker and parses it with the spf package. No
// recursive evaluation is performed; includes and redirects in the
// returned record are not followed.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mailpolicy/spf"
	"github.com/mailpolicy/spf/dns"
)

// Lookup errors.
var (
	// ErrNoRecord indicates the domain publishes no policy record.
	ErrNoRecord = errors.New("lookup: no SPF record found")

	// ErrMultipleRecords indicates the domain publishes more than one
	// policy record, which is a permanent error per RFC 7208.
	ErrMultipleRecords = errors.New("lookup: multiple SPF records found")

	// ErrInvalidDomain indicates the domain name is not syntactically
	// valid.
	ErrInvalidDomain = errors.New("lookup: invalid domain name")
)

// Config adjusts how records are discovered and parsed.
type Config struct {
	// Check is passed through to the parser; hostnames it rejects end
	// up in the record's warnings.
	Check spf.CheckFunc

	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger
}

// Result is a discovered policy record together with its provenance.
type Result struct {
	// ID uniquely identifies this discovery, usable as a cache or
	// audit key.
	ID ulid.ULID

	// Domain is the domain that was queried.
	Domain string

	// TXT is the record string as published.
	TXT string

	// Record is the parsed record.
	Record *spf.Record

	// Authentic indicates the DNS response was DNSSEC-validated.
	Authentic bool

	// FetchedAt is when the record was retrieved.
	FetchedAt time.Time
}

// Lookup fetches and parses the policy record for domain.
func Lookup(ctx context.Context, resolver dns.Resolver, domain string) (*Result, error) {
	return LookupWith(ctx, resolver, domain, Config{})
}

// LookupWith fetches and parses the policy record for domain using the
// given configuration.
func LookupWith(ctx context.Context, resolver dns.Resolver, domain string, cfg Config) (*Result, error) {
	if !spf.ValidHostname(domain) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	result, err := resolver.LookupTXT(ctx, domain)
	if errors.Is(err, dns.ErrNotFound) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("lookup: DNS query failed: %w", err)
	}

	var txt string
	for _, s := range result.Records {
		if !isPolicyRecord(s) {
			continue
		}
		if txt != "" {
			return nil, ErrMultipleRecords
		}
		txt = s
	}
	if txt == "" {
		return nil, ErrNoRecord
	}

	record, err := spf.ParseWithCheck(txt, cfg.Check)
	if err != nil {
		return nil, fmt.Errorf("lookup: parsing record %q: %w", txt, err)
	}

	res := &Result{
		ID:        ulid.Make(),
		Domain:    domain,
		TXT:       txt,
		Record:    record,
		Authentic: result.Authentic,
		FetchedAt: time.Now(),
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("policy record discovered",
			"id", res.ID.String(),
			"domain", domain,
			"authentic", res.Authentic,
			"warnings", len(record.Warnings()))
	}

	return res, nil
}

// isPolicyRecord reports whether a TXT string carries a recognized
// version marker.
func isPolicyRecord(s string) bool {
	return strings.HasPrefix(s, "v=spf1") || strings.HasPrefix(s, "spf2.0")
}
