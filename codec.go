package spf

import (
	"fmt"
	"net/netip"

	"github.com/tinylib/msgp/msgp"
)

// MessagePack codec for Record, used by the lookup cache. The format
// is a string-keyed map so the layout can grow without breaking old
// payloads; unknown keys are skipped on decode. Mechanisms are encoded
// as small arrays, with the kind implied by the group they sit in.

// MarshalMsg implements msgp.Marshaler, appending the encoded record
// to b.
func (r *Record) MarshalMsg(b []byte) ([]byte, error) {
	o := msgp.Require(b, r.Msgsize())
	o = msgp.AppendMapHeader(o, 16)

	o = msgp.AppendString(o, "version")
	o = msgp.AppendString(o, r.version)
	o = msgp.AppendString(o, "source")
	o = msgp.AppendString(o, r.source)
	o = msgp.AppendString(o, "fromSource")
	o = msgp.AppendBool(o, r.fromSource)
	o = msgp.AppendString(o, "wasParsed")
	o = msgp.AppendBool(o, r.wasParsed)
	o = msgp.AppendString(o, "wasValidated")
	o = msgp.AppendBool(o, r.wasValidated)
	o = msgp.AppendString(o, "isValid")
	o = msgp.AppendBool(o, r.isValid)

	o = msgp.AppendString(o, "redirect")
	o = appendOptTextMech(o, r.redirect)
	o = msgp.AppendString(o, "ptr")
	o = appendOptTextMech(o, r.ptr)
	o = msgp.AppendString(o, "all")
	o = appendOptTextMech(o, r.all)

	o = msgp.AppendString(o, "a")
	o = appendTextGroup(o, r.a)
	o = msgp.AppendString(o, "mx")
	o = appendTextGroup(o, r.mx)
	o = msgp.AppendString(o, "include")
	o = appendTextGroup(o, r.include)
	o = msgp.AppendString(o, "exists")
	o = appendTextGroup(o, r.exists)

	o = msgp.AppendString(o, "ip4")
	o = appendIPGroup(o, r.ip4)
	o = msgp.AppendString(o, "ip6")
	o = appendIPGroup(o, r.ip6)

	o = msgp.AppendString(o, "warnings")
	o = msgp.AppendArrayHeader(o, uint32(len(r.warnings)))
	for _, w := range r.warnings {
		o = msgp.AppendString(o, w)
	}

	return o, nil
}

// UnmarshalMsg implements msgp.Unmarshaler, decoding a record encoded
// by MarshalMsg and returning the remaining bytes.
func (r *Record) UnmarshalMsg(b []byte) ([]byte, error) {
	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}

	*r = Record{}
	for i := uint32(0); i < sz; i++ {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return b, err
		}

		switch key {
		case "version":
			r.version, b, err = msgp.ReadStringBytes(b)
		case "source":
			r.source, b, err = msgp.ReadStringBytes(b)
		case "fromSource":
			r.fromSource, b, err = msgp.ReadBoolBytes(b)
		case "wasParsed":
			r.wasParsed, b, err = msgp.ReadBoolBytes(b)
		case "wasValidated":
			r.wasValidated, b, err = msgp.ReadBoolBytes(b)
		case "isValid":
			r.isValid, b, err = msgp.ReadBoolBytes(b)
		case "redirect":
			r.redirect, b, err = readOptTextMech(b, KindRedirect)
			r.isRedirected = r.redirect != nil
		case "ptr":
			r.ptr, b, err = readOptTextMech(b, KindPtr)
		case "all":
			r.all, b, err = readOptTextMech(b, KindAll)
		case "a":
			r.a, b, err = readTextGroup(b, KindA)
		case "mx":
			r.mx, b, err = readTextGroup(b, KindMX)
		case "include":
			r.include, b, err = readTextGroup(b, KindInclude)
		case "exists":
			r.exists, b, err = readTextGroup(b, KindExists)
		case "ip4":
			r.ip4, b, err = readIPGroup(b, KindIP4)
		case "ip6":
			r.ip6, b, err = readIPGroup(b, KindIP6)
		case "warnings":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			for j := uint32(0); j < n; j++ {
				var w string
				w, b, err = msgp.ReadStringBytes(b)
				if err != nil {
					return b, err
				}
				r.warnings = append(r.warnings, w)
			}
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return b, err
		}
	}

	return b, nil
}

// Msgsize implements msgp.Sizer with a generous upper bound.
func (r *Record) Msgsize() int {
	n := msgp.MapHeaderSize + 16*msgp.StringPrefixSize
	n += len(r.version) + len(r.source) + 4*msgp.BoolSize + 200
	for _, w := range r.warnings {
		n += msgp.StringPrefixSize + len(w)
	}
	groups := len(r.a) + len(r.mx) + len(r.include) + len(r.exists) + len(r.ip4) + len(r.ip6) + 3
	n += groups * (msgp.ArrayHeaderSize + msgp.Uint8Size + msgp.BoolSize + msgp.StringPrefixSize + maxRecordLength)
	return n
}

// appendTextMech encodes a text mechanism as [qualifier, hasValue, value].
func appendTextMech(o []byte, m Mechanism[string]) []byte {
	o = msgp.AppendArrayHeader(o, 3)
	o = msgp.AppendUint8(o, uint8(m.qualifier))
	o = msgp.AppendBool(o, m.hasValue)
	return msgp.AppendString(o, m.value)
}

func appendOptTextMech(o []byte, m *Mechanism[string]) []byte {
	if m == nil {
		return msgp.AppendNil(o)
	}
	return appendTextMech(o, *m)
}

func appendTextGroup(o []byte, group []Mechanism[string]) []byte {
	o = msgp.AppendArrayHeader(o, uint32(len(group)))
	for _, m := range group {
		o = appendTextMech(o, m)
	}
	return o
}

// appendIPGroup encodes IP mechanisms as [qualifier, prefix-string].
func appendIPGroup(o []byte, group []Mechanism[netip.Prefix]) []byte {
	o = msgp.AppendArrayHeader(o, uint32(len(group)))
	for _, m := range group {
		o = msgp.AppendArrayHeader(o, 2)
		o = msgp.AppendUint8(o, uint8(m.qualifier))
		o = msgp.AppendString(o, m.value.String())
	}
	return o
}

func readTextMech(b []byte, kind Kind) (Mechanism[string], []byte, error) {
	var m Mechanism[string]
	sz, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return m, b, err
	}
	if sz != 3 {
		return m, b, fmt.Errorf("spf: mechanism tuple has %d fields, want 3", sz)
	}
	q, b, err := msgp.ReadUint8Bytes(b)
	if err != nil {
		return m, b, err
	}
	if q > uint8(Neutral) {
		return m, b, fmt.Errorf("spf: unknown qualifier tag %d", q)
	}
	hasValue, b, err := msgp.ReadBoolBytes(b)
	if err != nil {
		return m, b, err
	}
	value, b, err := msgp.ReadStringBytes(b)
	if err != nil {
		return m, b, err
	}
	m = Mechanism[string]{kind: kind, qualifier: Qualifier(q), value: value, hasValue: hasValue}
	return m, b, nil
}

func readOptTextMech(b []byte, kind Kind) (*Mechanism[string], []byte, error) {
	if msgp.IsNil(b) {
		b, err := msgp.ReadNilBytes(b)
		return nil, b, err
	}
	m, b, err := readTextMech(b, kind)
	if err != nil {
		return nil, b, err
	}
	return &m, b, nil
}

func readTextGroup(b []byte, kind Kind) ([]Mechanism[string], []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, b, err
	}
	var group []Mechanism[string]
	for i := uint32(0); i < n; i++ {
		var m Mechanism[string]
		m, b, err = readTextMech(b, kind)
		if err != nil {
			return nil, b, err
		}
		group = append(group, m)
	}
	return group, b, nil
}

func readIPGroup(b []byte, kind Kind) ([]Mechanism[netip.Prefix], []byte, error) {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return nil, b, err
	}
	var group []Mechanism[netip.Prefix]
	for i := uint32(0); i < n; i++ {
		var sz uint32
		sz, b, err = msgp.ReadArrayHeaderBytes(b)
		if err != nil {
			return nil, b, err
		}
		if sz != 2 {
			return nil, b, fmt.Errorf("spf: ip mechanism tuple has %d fields, want 2", sz)
		}
		var q uint8
		q, b, err = msgp.ReadUint8Bytes(b)
		if err != nil {
			return nil, b, err
		}
		if q > uint8(Neutral) {
			return nil, b, fmt.Errorf("spf: unknown qualifier tag %d", q)
		}
		var s string
		s, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return nil, b, err
		}
		network, perr := netip.ParsePrefix(s)
		if perr != nil {
			return nil, b, fmt.Errorf("%w: %v", ErrInvalidIPNetwork, perr)
		}
		if kind.IsIP4() && !network.Addr().Is4() {
			return nil, b, fmt.Errorf("%w: %s", ErrNotIP4Network, network)
		}
		if kind.IsIP6() && network.Addr().Is4() {
			return nil, b, fmt.Errorf("%w: %s", ErrNotIP6Network, network)
		}
		group = append(group, NewMechanism(kind, Qualifier(q), network))
	}
	return group, b, nil
}

var (
	_ msgp.Marshaler   = (*Record)(nil)
	_ msgp.Unmarshaler = (*Record)(nil)
	_ msgp.Sizer       = (*Record)(nil)
)
