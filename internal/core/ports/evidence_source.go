package ports

import (
	"context"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

// EvidenceSource searches the medical literature for documents supporting or
// refuting a claim. The result keeps the source's own relevance order,
// truncated to maxResults. An empty result is a normal outcome; transport
// failures and timeouts never escape the implementation.
type EvidenceSource interface {
	Search(ctx context.Context, claim string, maxResults int) []domain.EvidenceDoc
}
