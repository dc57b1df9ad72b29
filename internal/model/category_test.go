package model

import "testing"

func TestCanonicalIndex(t *testing.T) {
	for i, c := range Categories {
		if got := c.CanonicalIndex(); got != i {
			t.Errorf("%s canonical index %d, want %d", c, got, i)
		}
	}
	if got := Category("charisma").CanonicalIndex(); got != -1 {
		t.Errorf("unknown category index %d, want -1", got)
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"innovation", CategoryInnovation, false},
		{"resilience", CategoryResilience, false},
		{"Innovation", "", true},
		{"", "", true},
		{"charisma", "", true},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := CategoryCollaboration.Label(); got != "Collaboration" {
		t.Errorf("label %q, want Collaboration", got)
	}
	if got := Category("charisma").Label(); got != "charisma" {
		t.Errorf("unknown label %q, want the raw value", got)
	}
}
