package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount_Valid(t *testing.T) {
	testCases := []string{"0", "0.01", "1", "100.5", "9999999.99"}

	for _, s := range testCases {
		err := ValidateAmount(decimal.RequireFromString(s))
		if err != nil {
			t.Errorf("ValidateAmount(%s) error = %v, want nil", s, err)
		}
	}
}

func TestValidateAmount_Negative(t *testing.T) {
	testCases := []string{"-0.01", "-100", "-9999.99"}

	for _, s := range testCases {
		err := ValidateAmount(decimal.RequireFromString(s))
		if err == nil {
			t.Errorf("ValidateAmount(%s) error = nil, want error", s)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(decimal.NewFromInt(100_000_000))
	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		err := ValidateDate(date)
		if err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"Food", "Rent", "Gold bars"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) error = %v, want nil", name, err)
		}
	}

	if err := ValidateName(""); err == nil {
		t.Error("ValidateName(\"\") error = nil, want error")
	}

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateName(string(long)); err == nil {
		t.Error("ValidateName() with 65 chars error = nil, want error")
	}
}

func TestParseDateTime(t *testing.T) {
	valid := []string{
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30:00",
		"2024-03-15",
	}
	for _, s := range valid {
		if _, err := ParseDateTime(s); err != nil {
			t.Errorf("ParseDateTime(%q) error = %v, want nil", s, err)
		}
	}

	if _, err := ParseDateTime("15/03/2024"); err == nil {
		t.Error("ParseDateTime(\"15/03/2024\") error = nil, want error")
	}
}
