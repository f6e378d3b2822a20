package spf

import (
	"errors"
	"net/netip"
	"testing"
)

func TestMechanismString(t *testing.T) {
	tests := []struct {
		name string
		m    interface{ String() string }
		want string
	}{
		{"bare a", NewA(Pass, ""), "a"},
		{"a with domain", NewA(Pass, "mail.example.com"), "a:mail.example.com"},
		{"a with domain and prefix", NewA(Fail, "mail.example.com/24"), "-a:mail.example.com/24"},
		{"a cidr shorthand", NewA(Pass, "/24"), "a/24"},
		{"bare mx", NewMX(SoftFail, ""), "~mx"},
		{"mx with domain", NewMX(Pass, "mx.example.com"), "mx:mx.example.com"},
		{"mx cidr shorthand", NewMX(Neutral, "/26"), "?mx/26"},
		{"include", NewInclude(Pass, "_spf.example.com"), "include:_spf.example.com"},
		{"exists", NewExists(Fail, "%{ir}.example.com"), "-exists:%{ir}.example.com"},
		{"bare ptr", NewPtr(Pass, ""), "ptr"},
		{"ptr with domain", NewPtr(Pass, "example.com"), "ptr:example.com"},
		{"redirect", NewRedirect(Pass, "_spf.example.com"), "redirect=_spf.example.com"},
		{"all fail", NewAll(Fail), "-all"},
		{"all neutral", NewAll(Neutral), "?all"},
		{"all pass elided", NewAll(Pass), "all"},
		{"ip4 network", NewIP4(Pass, netip.MustParsePrefix("203.0.113.0/24")), "ip4:203.0.113.0/24"},
		{"ip6 network", NewIP6(SoftFail, netip.MustParsePrefix("2001:db8::/32")), "~ip6:2001:db8::/32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMechanismRaw(t *testing.T) {
	if got := NewA(Pass, "").Raw(); got != "a" {
		t.Errorf("bare a Raw() = %q, want %q", got, "a")
	}
	if got := NewA(Fail, "example.com").Raw(); got != "example.com" {
		t.Errorf("Raw() = %q, want %q", got, "example.com")
	}
	if got := NewIP4(Pass, netip.MustParsePrefix("10.0.0.0/8")).Raw(); got != "10.0.0.0/8" {
		t.Errorf("ip4 Raw() = %q, want %q", got, "10.0.0.0/8")
	}
}

func TestMechanismValue(t *testing.T) {
	m := NewMX(Pass, "")
	if _, has := m.Value(); has {
		t.Errorf("expected bare mx to carry no value")
	}

	m = NewMX(Pass, "mx.example.com")
	v, has := m.Value()
	if !has || v != "mx.example.com" {
		t.Errorf("Value() = %q, %v", v, has)
	}
}

func TestMechanismQualifierPredicates(t *testing.T) {
	if !NewAll(Pass).IsPass() || NewAll(Fail).IsPass() {
		t.Errorf("IsPass misclassified")
	}
	if !NewAll(Fail).IsFail() || !NewAll(SoftFail).IsSoftFail() || !NewAll(Neutral).IsNeutral() {
		t.Errorf("qualifier predicates misclassified")
	}
}

func TestNewIPSelectsFamily(t *testing.T) {
	m := NewIP(Pass, netip.MustParsePrefix("192.0.2.0/24"))
	if m.Kind() != KindIP4 {
		t.Errorf("expected KindIP4, got %v", m.Kind())
	}

	m = NewIP(Pass, netip.MustParsePrefix("2001:db8::/64"))
	if m.Kind() != KindIP6 {
		t.Errorf("expected KindIP6, got %v", m.Kind())
	}
}

func TestMechanismNetwork(t *testing.T) {
	network := netip.MustParsePrefix("198.51.100.0/25")
	m := NewIP4(Pass, network)
	if got := m.Network(); got != network {
		t.Errorf("Network() = %v, want %v", got, network)
	}

	if got := NewA(Pass, "example.com").Network(); got.IsValid() {
		t.Errorf("expected zero prefix for a text mechanism, got %v", got)
	}
}

func TestParseMechanism(t *testing.T) {
	tests := []struct {
		token    string
		wantKind Kind
		wantQ    Qualifier
		wantRaw  string
		wantErr  error
	}{
		{token: "redirect=_spf.example.com", wantKind: KindRedirect, wantQ: Pass, wantRaw: "_spf.example.com"},
		{token: "include:_spf.example.com", wantKind: KindInclude, wantQ: Pass, wantRaw: "_spf.example.com"},
		{token: "-exists:%{ir}.example.com", wantKind: KindExists, wantQ: Fail, wantRaw: "%{ir}.example.com"},
		{token: "~all", wantKind: KindAll, wantQ: SoftFail, wantRaw: "all"},
		{token: "a", wantKind: KindA, wantQ: Pass, wantRaw: "a"},
		{token: "?a:example.com/24", wantKind: KindA, wantQ: Neutral, wantRaw: "example.com/24"},
		{token: "mx/26", wantKind: KindMX, wantQ: Pass, wantRaw: "/26"},
		{token: "ptr:example.com", wantKind: KindPtr, wantQ: Pass, wantRaw: "example.com"},
		{token: "ip4:10.0.0.0/8", wantErr: ErrInvalidMechanismFormat},
		{token: "unknown-token", wantErr: ErrInvalidMechanismFormat},
		{token: "a:/24", wantErr: ErrInvalidMechanismFormat},
		{token: "ptr/24", wantErr: ErrInvalidMechanismFormat},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := ParseMechanism(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMechanism(%q) error = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMechanism(%q) error = %v", tt.token, err)
			}
			if m.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", m.Kind(), tt.wantKind)
			}
			if m.Qualifier() != tt.wantQ {
				t.Errorf("Qualifier() = %v, want %v", m.Qualifier(), tt.wantQ)
			}
			if m.Raw() != tt.wantRaw {
				t.Errorf("Raw() = %q, want %q", m.Raw(), tt.wantRaw)
			}
		})
	}
}

func TestParseIPMechanism(t *testing.T) {
	tests := []struct {
		token       string
		wantKind    Kind
		wantNetwork string
		wantErr     error
	}{
		{token: "ip4:203.0.113.0/24", wantKind: KindIP4, wantNetwork: "203.0.113.0/24"},
		{token: "-ip4:203.0.113.7", wantKind: KindIP4, wantNetwork: "203.0.113.7/32"},
		{token: "ip6:2001:db8::/32", wantKind: KindIP6, wantNetwork: "2001:db8::/32"},
		{token: "~ip6:2001:db8::1", wantKind: KindIP6, wantNetwork: "2001:db8::1/128"},
		{token: "ip4:2001:db8::/32", wantErr: ErrNotIP4Network},
		{token: "ip6:203.0.113.0/24", wantErr: ErrNotIP6Network},
		{token: "ip4:not-an-address", wantErr: ErrInvalidIPNetwork},
		{token: "a:example.com", wantErr: ErrInvalidMechanismFormat},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := ParseIPMechanism(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseIPMechanism(%q) error = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIPMechanism(%q) error = %v", tt.token, err)
			}
			if m.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", m.Kind(), tt.wantKind)
			}
			if got := m.Network().String(); got != tt.wantNetwork {
				t.Errorf("Network() = %q, want %q", got, tt.wantNetwork)
			}
		})
	}
}
