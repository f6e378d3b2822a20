package spf

import "testing"

func TestQualifierString(t *testing.T) {
	tests := []struct {
		q    Qualifier
		want string
	}{
		{Pass, ""},
		{Fail, "-"},
		{SoftFail, "~"},
		{Neutral, "?"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Qualifier(%d).String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}

func TestSplitQualifier(t *testing.T) {
	tests := []struct {
		token    string
		wantQ    Qualifier
		wantRest string
	}{
		{"mx", Pass, "mx"},
		{"+mx", Pass, "mx"},
		{"-all", Fail, "all"},
		{"~include:example.com", SoftFail, "include:example.com"},
		{"?a", Neutral, "a"},
		{"", Pass, ""},
		{"-", Fail, ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			q, rest := splitQualifier(tt.token)
			if q != tt.wantQ {
				t.Errorf("splitQualifier(%q) qualifier = %v, want %v", tt.token, q, tt.wantQ)
			}
			if rest != tt.wantRest {
				t.Errorf("splitQualifier(%q) rest = %q, want %q", tt.token, rest, tt.wantRest)
			}
		})
	}
}
