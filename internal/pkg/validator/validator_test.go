package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-14"); !ok {
		t.Error("IsValidDate(2026-02-14) = false, want true")
	}
	for _, s := range []string{"14-02-2026", "2026-13-01", "2026-02-30", "", "today"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"07:30", "16:00", "23:59"}
	invalid := []string{"24:00", "7:99", "730", ""}
	for _, s := range valid {
		if _, ok := IsValidClockTime(s); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClockTime(s); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsNonNegativeMoney(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"25.00", true},
		{"25.5", true},
		{"-0.01", false},
		{"10.125", false},
	}
	for _, c := range cases {
		d := decimal.RequireFromString(c.input)
		if got := IsNonNegativeMoney(d); got != c.want {
			t.Errorf("IsNonNegativeMoney(%s) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"SP-0001", "CREW-1234"}
	invalid := []string{"sp-0001", "SP0001", "S-0001", "SP-01", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}
