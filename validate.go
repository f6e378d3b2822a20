package spf

// maxLookups is the ceiling on DNS-querying mechanisms per RFC 7208:
// a, mx, include, exists and the redirect modifier each cost one.
const maxLookups = 10

// Validate runs the auxiliary consistency checks over the record and
// returns the first violated rule, if any.
//
// Unlike the append-time policy, where a redirect silently wins over
// all, Validate treats the two being present together as an error.
// On success the record is marked validated and valid.
func (r *Record) Validate() error {
	if r.fromSource {
		if len(r.source) > maxRecordLength {
			return ErrSourceLengthExceeded
		}
		if !r.wasParsed {
			return ErrHasNotBeenParsed
		}
	} else if len(r.String()) > maxRecordLength {
		return ErrSourceLengthExceeded
	}
	if r.redirect != nil && r.all != nil {
		return ErrRedirectWithAllMechanism
	}
	if r.LookupCount() > maxLookups {
		return ErrLookupLimitExceeded
	}
	r.wasValidated = true
	r.isValid = true
	return nil
}

// LookupCount returns the number of mechanisms whose evaluation would
// require a DNS lookup.
func (r *Record) LookupCount() int {
	n := len(r.a) + len(r.mx) + len(r.include) + len(r.exists)
	if r.isRedirected {
		n++
	}
	return n
}
