// Package spf deconstructs SPF policy records into a typed model and
// rebuilds them into canonical text.
//
// A record string is parsed into a Record holding typed mechanisms
// (qualifier, kind, optional payload); a Record can also be built
// programmatically without ever having a source string. Rendering is
// deterministic and independent of the original token order, so
// parse-then-render yields the canonical form rather than a guaranteed
// byte-for-byte round trip.
//
// The package performs no DNS resolution: the only network-adjacent
// hook is the optional hostname-validity CheckFunc, which feeds the
// record's warnings. Fetching the TXT record for a domain lives in the
// lookup subpackage.
//
// Deconstructing an existing record:
//
//	record, err := spf.Parse("v=spf1 a mx ~all")
//	if err != nil {
//	    // Handle error
//	}
//	record.All().IsSoftFail() // true
//	record.String()           // "v=spf1 a mx ~all"
//
// Building a record from scratch:
//
//	record := spf.NewRecord()
//	record.SetV1()
//	record.AppendIPMechanism(spf.NewIP(spf.Pass, netip.MustParsePrefix("203.32.160.0/32")))
//	record.String() // "v=spf1 ip4:203.32.160.0/32"
//
// References:
//   - RFC 7208: Sender Policy Framework (SPF)
//   - RFC 4408: Sender Policy Framework (obsoleted by 7208)
package spf
