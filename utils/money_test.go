package utils

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in       string
		cents    int64
		currency string
	}{
		{"K500", 50000, "ZMW"},
		{"K 500", 50000, "ZMW"},
		{"k250.50", 25050, "ZMW"},
		{"ZMW 1,250", 125000, "ZMW"},
		{"$20", 2000, "USD"},
		{"USD 19.99", 1999, "USD"},
		{"500", 50000, "ZMW"},
		{"R75", 7500, "ZAR"},
	}

	for _, tc := range cases {
		cents, currency, err := ParseAmount(tc.in)
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tc.in, err)
			continue
		}
		if cents != tc.cents || currency != tc.currency {
			t.Errorf("ParseAmount(%q) = %d %s, want %d %s", tc.in, cents, currency, tc.cents, tc.currency)
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "K", "free", "K-5", "XY12.3.4"} {
		if _, _, err := ParseAmount(in); !errors.Is(err, ErrBadAmount) {
			t.Errorf("ParseAmount(%q): expected ErrBadAmount, got %v", in, err)
		}
	}
}
