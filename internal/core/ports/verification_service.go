package ports

import (
	"context"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

// VerificationService runs the full verification pipeline for one claim.
// It always produces a result: a system fault degrades the verdict to the
// safe fallback, it never surfaces as an error to the caller.
type VerificationService interface {
	Verify(ctx context.Context, claim, channel string) domain.VerificationResult
}
