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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15", "2024-01-15 10:30:00", "", "tomorrow"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonthAndYear(t *testing.T) {
	for _, m := range []int{1, 6, 12} {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
	if !IsValidYear(2020) || !IsValidYear(2026) {
		t.Error("years from 2020 onward should be valid")
	}
	if IsValidYear(2019) {
		t.Error("IsValidYear(2019) = true, want false")
	}
}

func TestIsValidCurrencyCode(t *testing.T) {
	valid := []string{"USD", "EUR", "IDR"}
	invalid := []string{"usd", "US", "USDD", "U$D", ""}
	for _, code := range valid {
		if !IsValidCurrencyCode(code) {
			t.Errorf("IsValidCurrencyCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCurrencyCode(code) {
			t.Errorf("IsValidCurrencyCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidIBAN(t *testing.T) {
	valid := []string{"DE89370400440532013000", "GB29 NWBK 6016 1331 9268 19"}
	invalid := []string{"DE8937", "1234567890123456", ""}
	for _, iban := range valid {
		if !IsValidIBAN(iban) {
			t.Errorf("IsValidIBAN(%q) = false, want true", iban)
		}
	}
	for _, iban := range invalid {
		if IsValidIBAN(iban) {
			t.Errorf("IsValidIBAN(%q) = true, want false", iban)
		}
	}
}

func TestIsPositiveAmount(t *testing.T) {
	if !IsPositiveAmount(decimal.NewFromFloat(0.01)) {
		t.Error("0.01 should be positive")
	}
	if IsPositiveAmount(decimal.Zero) {
		t.Error("zero is not positive")
	}
	if IsPositiveAmount(decimal.NewFromInt(-5)) {
		t.Error("-5 is not positive")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "month", Message: "must be between 1 and 12"},
	}

	if errs.Error() != "email: is required; month: must be between 1 and 12" {
		t.Errorf("unexpected error string: %q", errs.Error())
	}

	m := errs.ToMap()
	if m["email"] != "is required" || m["month"] != "must be between 1 and 12" {
		t.Errorf("unexpected map: %v", m)
	}
}
