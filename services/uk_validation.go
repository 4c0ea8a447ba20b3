package services

import (
	"regexp"
	"strings"
)

// Validation regex patterns
var (
	postcodePattern  = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9]{1,2}[A-Z]?\s?[0-9][A-Z]{2}$`)
	sortCodePattern  = regexp.MustCompile(`^\d{6}$`)
	accountNoPattern = regexp.MustCompile(`^\d{8}$`)
	vatNumberPattern = regexp.MustCompile(`(?i)^GB[0-9]{9}$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nonDigitPattern  = regexp.MustCompile(`\D`)
	whitespace       = regexp.MustCompile(`\s`)
)

// ValidateUKPostcode reports whether s matches the standard UK postcode
// pattern, tolerating a missing internal space and lowercase input.
func ValidateUKPostcode(s string) bool {
	return postcodePattern.MatchString(whitespace.ReplaceAllString(s, ""))
}

// FormatUKPostcode uppercases and normalises a postcode to "outward inward"
// with a single separating space, splitting off the last three characters as
// the inward code. Input shorter than 5 characters after whitespace removal
// is returned uppercased but unsplit.
func FormatUKPostcode(s string) string {
	cleaned := strings.ToUpper(whitespace.ReplaceAllString(s, ""))
	if len(cleaned) >= 5 {
		outward := cleaned[:len(cleaned)-3]
		inward := cleaned[len(cleaned)-3:]
		return outward + " " + inward
	}
	return strings.ToUpper(s)
}

// FormatUKPhoneNumber reformats a UK phone number into conventional
// groupings, distinguishing mobile, London and other prefixes in both
// international (+44) and national (0) forms. It never validates: input
// matching no known prefix is returned unchanged, and malformed input
// produces deterministically derived (if malformed) output.
func FormatUKPhoneNumber(phone string) string {
	cleaned := nonDigitPattern.ReplaceAllString(phone, "")

	switch {
	case strings.HasPrefix(cleaned, "44"):
		national := cleaned[2:]
		switch {
		case strings.HasPrefix(national, "7"):
			// Mobile: +44 7xxx xxx xxx
			return "+44 " + seg(national, 0, 4) + " " + seg(national, 4, 7) + " " + from(national, 7)
		case strings.HasPrefix(national, "20"), strings.HasPrefix(national, "21"):
			// London: +44 20 xxxx xxxx
			return "+44 " + seg(national, 0, 2) + " " + seg(national, 2, 6) + " " + from(national, 6)
		default:
			// Other UK numbers: +44 xxxx xxx xxx
			return "+44 " + seg(national, 0, 4) + " " + seg(national, 4, 7) + " " + from(national, 7)
		}
	case strings.HasPrefix(cleaned, "0"):
		switch {
		case strings.HasPrefix(cleaned, "07"):
			// Mobile: 07xxx xxx xxx
			return seg(cleaned, 0, 5) + " " + seg(cleaned, 5, 8) + " " + from(cleaned, 8)
		case strings.HasPrefix(cleaned, "020"), strings.HasPrefix(cleaned, "021"):
			// London: 020 xxxx xxxx
			return seg(cleaned, 0, 3) + " " + seg(cleaned, 3, 7) + " " + from(cleaned, 7)
		default:
			// Other: 01xxx xxx xxx
			return seg(cleaned, 0, 5) + " " + seg(cleaned, 5, 8) + " " + from(cleaned, 8)
		}
	}

	return phone
}

// seg returns s[start:end] with both indexes clamped to len(s).
func seg(s string, start, end int) string {
	if start > len(s) {
		start = len(s)
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// from returns s[start:] with start clamped to len(s).
func from(s string, start int) string {
	return seg(s, start, len(s))
}

// ValidateUKSortCode reports whether exactly 6 digits remain after removing
// hyphens and spaces.
func ValidateUKSortCode(s string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(s)
	return sortCodePattern.MatchString(cleaned)
}

// FormatUKSortCode groups a 6-digit sort code as NN-NN-NN. Anything that does
// not clean to 6 digits is returned unchanged.
func FormatUKSortCode(s string) string {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(s)
	if len(cleaned) == 6 {
		return cleaned[0:2] + "-" + cleaned[2:4] + "-" + cleaned[4:6]
	}
	return s
}

// ValidateUKAccountNumber reports whether exactly 8 digits remain after
// removing spaces.
func ValidateUKAccountNumber(s string) bool {
	cleaned := strings.ReplaceAll(s, " ", "")
	return accountNoPattern.MatchString(cleaned)
}

// ValidateUKVATNumber validates a GB VAT registration number (GB followed by
// 9 digits). Empty input is valid since VAT registration is optional.
func ValidateUKVATNumber(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return true
	}
	return vatNumberPattern.MatchString(s)
}

// ValidateEmail validates an email address format. Empty input is valid.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// UKAddress is a UK postal address split into its conventional parts.
type UKAddress struct {
	Line1    string
	Line2    string
	City     string
	County   string
	Postcode string
	Country  string
}

// FormatUKAddress renders an address one part per line, skipping blanks and
// normalising the postcode. Country defaults to United Kingdom.
func FormatUKAddress(a UKAddress) string {
	country := a.Country
	if country == "" {
		country = "United Kingdom"
	}

	parts := []string{
		a.Line1,
		a.Line2,
		a.City,
		a.County,
		FormatUKPostcode(a.Postcode),
		country,
	}

	var lines []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			lines = append(lines, p)
		}
	}
	return strings.Join(lines, "\n")
}

// ValidateClientFields checks the format-sensitive fields of a client form
// and returns a map of field -> error message for any violations. Required
// presence checks are the caller's concern; this validates formats only.
func ValidateClientFields(fields map[string]string) map[string]string {
	errors := make(map[string]string)

	if v := fields["postcode"]; v != "" && !ValidateUKPostcode(v) {
		errors["postcode"] = "Invalid UK postcode (expected e.g. M1 1AA)"
	}
	if v := fields["email"]; v != "" && !ValidateEmail(v) {
		errors["email"] = "Invalid email format"
	}
	if v := fields["vat_number"]; v != "" && !ValidateUKVATNumber(v) {
		errors["vat_number"] = "Invalid VAT number (expected e.g. GB123456789)"
	}

	return errors
}
