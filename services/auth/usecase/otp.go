package usecase

import (
	"crypto/rand"
	"fmt"
)

// testOTPCode is the deterministic code issued outside production so the
// login flow can be exercised without an SMS channel.
const testOTPCode = "123456"

// generateOTP produces the one-time code. Production codes come from a
// cryptographically secure source with rejection sampling so every digit
// is uniformly distributed.
func (u *AuthUC) generateOTP() (string, error) {
	length := u.cfg.OTP.Length
	if length <= 0 {
		length = 6
	}

	if u.cfg.App.Environment != "production" {
		return testOTPCode, nil
	}

	return generateSecureOTP(length)
}

func generateSecureOTP(length int) (string, error) {
	code := make([]byte, 0, length)
	buf := make([]byte, 1)

	for len(code) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		// Reject values >= 250 so that modulo 10 stays uniform.
		if buf[0] >= 250 {
			continue
		}
		code = append(code, '0'+buf[0]%10)
	}

	return string(code), nil
}
