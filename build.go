package spf

import "strings"

// String renders the record in canonical form, always in the fixed
// group order: version, a, mx, include, ip4, ip6, exists, ptr, then
// redirect if present, else all. The source string plays no part, so
// a parsed record whose source interleaved groups differently will
// re-serialize in canonical order rather than byte-for-byte.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString(r.version)
	writeGroup(&b, r.a)
	writeGroup(&b, r.mx)
	writeGroup(&b, r.include)
	writeGroup(&b, r.ip4)
	writeGroup(&b, r.ip6)
	writeGroup(&b, r.exists)
	if r.ptr != nil {
		b.WriteByte(' ')
		b.WriteString(r.ptr.String())
	}
	if r.isRedirected {
		b.WriteByte(' ')
		b.WriteString(r.redirect.String())
	} else if r.all != nil {
		b.WriteByte(' ')
		b.WriteString(r.all.String())
	}
	return b.String()
}

// writeGroup appends each member of a group with a single leading space.
func writeGroup[T Payload](b *strings.Builder, group []Mechanism[T]) {
	for _, m := range group {
		b.WriteByte(' ')
		b.WriteString(m.String())
	}
}
