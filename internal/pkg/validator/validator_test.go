package validator

import (
	"testing"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "16:00", "23:59"}
	invalid := []string{"24:00", "16:60", "9:30", "16-00", "16:00:00", "", "noon"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	h, m, ok := ParseTimeOfDay("16:45")
	if !ok || h != 16 || m != 45 {
		t.Errorf("ParseTimeOfDay(16:45) = %d, %d, %v", h, m, ok)
	}
	if _, _, ok := ParseTimeOfDay("25:00"); ok {
		t.Error("ParseTimeOfDay(25:00) should not parse")
	}
}

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"01:30", 90},
		{"16:00", 960},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, ok := MinutesOfDay(c.input)
		if !ok || got != c.want {
			t.Errorf("MinutesOfDay(%q) = %d, %v, want %d", c.input, got, ok, c.want)
		}
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  summer-10 "); got != "SUMMER-10" {
		t.Errorf("NormalizeCouponCode = %q, want SUMMER-10", got)
	}
}

func TestIsValidCouponCode(t *testing.T) {
	valid := []string{"SUMMER-10", "WELCOME", "NEW25"}
	invalid := []string{"ab", "summer-10", "-LEADING", "", "HAS SPACE"}
	for _, s := range valid {
		if !IsValidCouponCode(s) {
			t.Errorf("IsValidCouponCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidCouponCode(s) {
			t.Errorf("IsValidCouponCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidInvoiceNumber(t *testing.T) {
	if !IsValidInvoiceNumber("INV-20240131-001") {
		t.Error("INV-20240131-001 should be valid")
	}
	for _, s := range []string{"INV-2024131-001", "INV-20240131-1", "inv-20240131-001", ""} {
		if IsValidInvoiceNumber(s) {
			t.Errorf("IsValidInvoiceNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidAthleteCode(t *testing.T) {
	if !IsValidAthleteCode("ATH-00042") {
		t.Error("ATH-00042 should be valid")
	}
	for _, s := range []string{"ATH-42", "ath-00042", "ATH00042", ""} {
		if IsValidAthleteCode(s) {
			t.Errorf("IsValidAthleteCode(%q) = true, want false", s)
		}
	}
}
