package gateway

import (
	"context"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/utils"
)

// AadhaarVerifier checks Aadhaar numbers against format and known-bogus
// rules. A real UIDAI integration would slot in behind the same
// interface.
type AadhaarVerifier struct {
	cfg *models.Config
}

// NewAadhaarVerifier creates a new Aadhaar verifier instance
func NewAadhaarVerifier(cfg *models.Config) *AadhaarVerifier {
	return &AadhaarVerifier{cfg: cfg}
}

// Verify reports whether the Aadhaar number passes validation
func (g *AadhaarVerifier) Verify(ctx context.Context, aadhaarNumber string) (bool, error) {
	return utils.IsValidAadhaarNumber(aadhaarNumber), nil
}
