package spf

import (
	"errors"
	"fmt"
	"net/netip"
	"testing"
)

func mustPrefix(s string) netip.Prefix {
	return netip.MustParsePrefix(s)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Record
		wantErr error
	}{
		{
			name: "parsed record passes",
			build: func() *Record {
				r, err := Parse("v=spf1 a mx -all")
				if err != nil {
					panic(err)
				}
				return r
			},
		},
		{
			name: "built record passes",
			build: func() *Record {
				r := NewRecord()
				r.SetV1()
				r.AppendMechanism(NewMX(Pass, ""))
				r.AppendMechanism(NewAll(Fail))
				return r
			},
		},
		{
			name: "redirect with all",
			build: func() *Record {
				r, err := Parse("v=spf1 redirect=_spf.example.com -all")
				if err != nil {
					panic(err)
				}
				return r
			},
			wantErr: ErrRedirectWithAllMechanism,
		},
		{
			name: "lookup limit exceeded",
			build: func() *Record {
				r := NewRecord()
				r.SetV1()
				for i := 0; i < 11; i++ {
					r.AppendMechanism(NewInclude(Pass, fmt.Sprintf("spf%d.example.com", i)))
				}
				return r
			},
			wantErr: ErrLookupLimitExceeded,
		},
		{
			name: "redirect counts toward the limit",
			build: func() *Record {
				r := NewRecord()
				r.SetV1()
				for i := 0; i < 10; i++ {
					r.AppendMechanism(NewInclude(Pass, fmt.Sprintf("spf%d.example.com", i)))
				}
				r.AppendMechanism(NewRedirect(Pass, "_spf.example.com"))
				return r
			},
			wantErr: ErrLookupLimitExceeded,
		},
		{
			name: "exactly at the lookup limit",
			build: func() *Record {
				r := NewRecord()
				r.SetV1()
				for i := 0; i < 10; i++ {
					r.AppendMechanism(NewInclude(Pass, fmt.Sprintf("spf%d.example.com", i)))
				}
				r.AppendMechanism(NewAll(Fail))
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.build()
			err := r.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if !r.IsValid() {
				t.Errorf("expected a validated record to be valid")
			}
		})
	}
}

func TestLookupCount(t *testing.T) {
	r := NewRecord()
	r.SetV1()
	r.AppendMechanism(NewA(Pass, ""))
	r.AppendMechanism(NewMX(Pass, ""))
	r.AppendMechanism(NewInclude(Pass, "_spf.example.com"))
	r.AppendMechanism(NewExists(Pass, "%{ir}.example.com"))
	r.AppendIPMechanism(NewIP4(Pass, mustPrefix("203.0.113.0/24")))
	r.AppendMechanism(NewPtr(Pass, ""))
	r.AppendMechanism(NewAll(Fail))

	// ip4, ptr and all cost nothing.
	if got := r.LookupCount(); got != 4 {
		t.Errorf("LookupCount() = %d, want 4", got)
	}

	r.AppendMechanism(NewRedirect(Pass, "_spf.example.com"))
	if got := r.LookupCount(); got != 5 {
		t.Errorf("LookupCount() with redirect = %d, want 5", got)
	}
}

func TestIsValidBeforeValidation(t *testing.T) {
	r := NewRecord()
	r.SetV1()
	r.AppendMechanism(NewAll(Fail))

	if r.IsValid() {
		t.Errorf("expected an unvalidated built record not to be valid")
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !r.IsValid() {
		t.Errorf("expected the record to be valid after validation")
	}
}
