package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rationCardPattern = regexp.MustCompile(`^[A-Z0-9]{10,20}$`)
	phonePattern      = regexp.MustCompile(`^\+91[6-9]\d{9}$`)
	aadhaarPattern    = regexp.MustCompile(`^\d{12}$`)
	otpPattern        = regexp.MustCompile(`^\d{6}$`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
	nonAlnumPattern   = regexp.MustCompile(`[^A-Z0-9]`)
)

// aadhaarBlacklist rejects trivially fake numbers (all-same-digit and
// sequential runs) that pass the format check.
var aadhaarBlacklist = map[string]struct{}{
	"000000000000": {}, "111111111111": {}, "222222222222": {},
	"333333333333": {}, "444444444444": {}, "555555555555": {},
	"666666666666": {}, "777777777777": {}, "888888888888": {},
	"999999999999": {}, "123456789012": {}, "012345678901": {},
}

// NormalizePhoneNumber normalizes an Indian mobile number to the
// +91XXXXXXXXXX form and validates it. Lookups must only ever see the
// normalized form.
func NormalizePhoneNumber(phoneNumber string) (string, error) {
	digits := nonDigitPattern.ReplaceAllString(phoneNumber, "")

	var normalized string
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		normalized = "+" + digits
	case len(digits) == 10:
		normalized = "+91" + digits
	default:
		return "", fmt.Errorf("invalid phone number format: %q", phoneNumber)
	}

	if !phonePattern.MatchString(normalized) {
		return "", fmt.Errorf("not a valid Indian mobile number: %q", phoneNumber)
	}

	return normalized, nil
}

// NormalizeRationCardID uppercases and strips non-alphanumeric characters,
// then validates the 10-20 character format.
func NormalizeRationCardID(rationCardID string) (string, error) {
	normalized := nonAlnumPattern.ReplaceAllString(strings.ToUpper(rationCardID), "")
	if !rationCardPattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid ration card ID format: %q", rationCardID)
	}
	return normalized, nil
}

// IsValidOTPFormat reports whether the code is exactly 6 digits
func IsValidOTPFormat(otp string) bool {
	return otpPattern.MatchString(otp)
}

// IsValidAadhaarNumber checks the 12-digit format and rejects
// blacklisted demo patterns. This is a format gate only; real
// verification belongs to the external identity collaborator.
func IsValidAadhaarNumber(aadhaarNumber string) bool {
	if !aadhaarPattern.MatchString(aadhaarNumber) {
		return false
	}
	_, blacklisted := aadhaarBlacklist[aadhaarNumber]
	return !blacklisted
}
