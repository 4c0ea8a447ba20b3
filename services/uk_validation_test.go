package services

import "testing"

func TestValidateUKPostcode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"standard", "M1 1AA", true},
		{"no space", "M11AA", true},
		{"lowercase", "m1 1aa", true},
		{"london", "SW1A 1AA", true},
		{"four char outward", "EC1A 1BB", true},
		{"leeds", "LS1 2AB", true},
		{"digits only", "12345", false},
		{"too short inward", "M1 1A", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateUKPostcode(tt.input); got != tt.valid {
				t.Errorf("ValidateUKPostcode(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestFormatUKPostcode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"lowercase no space", "m11aa", "M1 1AA"},
		{"already formatted", "M1 1AA", "M1 1AA"},
		{"london", "sw1a1aa", "SW1A 1AA"},
		{"extra spaces", " sw1a  1aa ", "SW1A 1AA"},
		{"too short to split", "M1", "M1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUKPostcode(tt.input); got != tt.expect {
				t.Errorf("FormatUKPostcode(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatUKPhoneNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"mobile national", "07123456789", "07123 456 789"},
		{"mobile already spaced", "07123 456 789", "07123 456 789"},
		{"mobile international", "+447123456789", "+44 7123 456 789"},
		{"london national", "02079460000", "020 7946 0000"},
		{"london international", "+442079460000", "+44 20 7946 0000"},
		{"landline national", "01619601000", "01619 601 000"},
		{"landline international", "+441619601000", "+44 1619 601 000"},
		{"not a uk number", "12345", "12345"},
		{"no digits", "call me", "call me"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUKPhoneNumber(tt.input); got != tt.expect {
				t.Errorf("FormatUKPhoneNumber(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestValidateUKSortCode(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"12-34-56", true},
		{"123456", true},
		{"12 34 56", true},
		{"12345", false},
		{"12-34-5a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateUKSortCode(tt.input); got != tt.valid {
			t.Errorf("ValidateUKSortCode(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestFormatUKSortCode(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"123456", "12-34-56"},
		{"12-34-56", "12-34-56"},
		{"12 34 56", "12-34-56"},
		{"1234", "1234"},
	}

	for _, tt := range tests {
		if got := FormatUKSortCode(tt.input); got != tt.expect {
			t.Errorf("FormatUKSortCode(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestValidateUKAccountNumber(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"12345678", true},
		{"1234 5678", true},
		{"1234567", false},
		{"123456789", false},
		{"1234567a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateUKAccountNumber(tt.input); got != tt.valid {
			t.Errorf("ValidateUKAccountNumber(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestValidateUKVATNumber(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"", true}, // registration is optional
		{"GB123456789", true},
		{"gb123456789", true},
		{"GB 123 456 789", true},
		{"GB12345678", false},
		{"123456789", false},
		{"GBX23456789", false},
	}

	for _, tt := range tests {
		if got := ValidateUKVATNumber(tt.input); got != tt.valid {
			t.Errorf("ValidateUKVATNumber(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"", true}, // optional field
		{"mike@johnsonelectrical.co.uk", true},
		{"first.last+tag@example.com", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.input); got != tt.valid {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.input, got, tt.valid)
		}
	}
}

func TestFormatUKAddress(t *testing.T) {
	t.Run("full address", func(t *testing.T) {
		got := FormatUKAddress(UKAddress{
			Line1:    "45 Oak Avenue",
			Line2:    "Flat 2",
			City:     "Manchester",
			County:   "Greater Manchester",
			Postcode: "m11aa",
		})
		expect := "45 Oak Avenue\nFlat 2\nManchester\nGreater Manchester\nM1 1AA\nUnited Kingdom"
		if got != expect {
			t.Errorf("FormatUKAddress = %q, want %q", got, expect)
		}
	})

	t.Run("skips blank parts", func(t *testing.T) {
		got := FormatUKAddress(UKAddress{Line1: "45 Oak Avenue", Postcode: "M1 1AA"})
		expect := "45 Oak Avenue\nM1 1AA\nUnited Kingdom"
		if got != expect {
			t.Errorf("FormatUKAddress = %q, want %q", got, expect)
		}
	})
}

func TestValidateClientFields(t *testing.T) {
	t.Run("valid fields produce no errors", func(t *testing.T) {
		errors := ValidateClientFields(map[string]string{
			"postcode":   "M1 1AA",
			"email":      "sarah@millerconstruction.co.uk",
			"vat_number": "GB123456789",
		})
		if len(errors) != 0 {
			t.Errorf("expected no errors, got %v", errors)
		}
	})

	t.Run("empty optional fields are not errors", func(t *testing.T) {
		errors := ValidateClientFields(map[string]string{})
		if len(errors) != 0 {
			t.Errorf("expected no errors, got %v", errors)
		}
	})

	t.Run("invalid fields are each reported", func(t *testing.T) {
		errors := ValidateClientFields(map[string]string{
			"postcode":   "not a postcode",
			"email":      "nope",
			"vat_number": "12345",
		})
		for _, field := range []string{"postcode", "email", "vat_number"} {
			if errors[field] == "" {
				t.Errorf("expected an error for %s, got none", field)
			}
		}
	})
}
