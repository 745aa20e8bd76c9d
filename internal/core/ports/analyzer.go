package ports

import (
	"context"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

// Analyzer evaluates a claim against the gathered evidence and produces a
// structured verdict. Implementations never fail past this boundary: when
// the underlying model errors out or returns an incomplete response, they
// return the fixed safe analysis (Unverified, Medium, consult-professionals
// text) instead. The pipeline's availability guarantee depends on that.
type Analyzer interface {
	Analyze(ctx context.Context, claim string, evidence []domain.EvidenceDoc) domain.Analysis
}
