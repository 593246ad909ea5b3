package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/digiration/digiration/services/auth SMSGateway,AadhaarVerifier

// SMSGateway dispatches one-time codes to an external SMS provider.
// A false return means delivery failed and may be retried; an
// ErrDeliveryUnknown error means the outcome could not be observed
// within the bounded wait.
type SMSGateway interface {
	SendOTP(ctx context.Context, phoneNumber, otpCode string) (bool, error)
}

// AadhaarVerifier is the pluggable identity-verification collaborator.
// The bundled implementation is a demo bypass (format and blacklist
// check only); a real UIDAI integration would replace it.
type AadhaarVerifier interface {
	Verify(ctx context.Context, aadhaarNumber string) (bool, error)
}
