package ports

import (
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

// ClaimMatcher finds the locally known authoritative fact a claim may refer
// to. The shipped implementation matches by normalized substring containment;
// the interface exists so a real index can replace it without touching the
// pipeline control flow.
type ClaimMatcher interface {
	MatchCandidate(claim string) (*domain.Fact, bool)
}
