package spf

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRedirect, "redirect="},
		{KindA, "a"},
		{KindMX, "mx"},
		{KindInclude, "include:"},
		{KindIP4, "ip4:"},
		{KindIP6, "ip6:"},
		{KindPtr, "ptr"},
		{KindExists, "exists:"},
		{KindAll, "all"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindRedirect.IsRedirect() || KindA.IsRedirect() {
		t.Errorf("IsRedirect misclassified")
	}
	if !KindIP4.IsIP() || !KindIP6.IsIP() {
		t.Errorf("expected ip4 and ip6 to be IP kinds")
	}
	if KindA.IsIP() || KindAll.IsIP() {
		t.Errorf("expected a and all not to be IP kinds")
	}
	if !KindPtr.IsPtr() || !KindExists.IsExists() || !KindAll.IsAll() {
		t.Errorf("kind predicates misclassified")
	}
}
