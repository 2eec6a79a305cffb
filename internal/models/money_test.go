package models

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"2.00", 200},
		{"2.5", 250},
		{"2", 200},
		{"0.05", 5},
		{"0", 0},
		{" 3.50 ", 350},
		{"12.99", 1299},
	}
	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePrice(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestParsePriceRejectsMalformed(t *testing.T) {
	// un prix illisible est rejeté à l'ingestion, jamais converti en 0
	for _, in := range []string{"", ".", "abc", "2.999", "-1.00", "1,50", "1.2.3", "2€"} {
		if _, err := ParsePrice(in); err == nil {
			t.Fatalf("ParsePrice(%q): expected error", in)
		}
	}
}

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{200, "2.00"},
		{250, "2.50"},
		{5, "0.05"},
		{0, "0.00"},
		{1299, "12.99"},
		{-350, "-3.50"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("Cents(%d).String(): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
