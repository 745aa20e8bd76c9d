package domain

import (
	"github.com/google/uuid"
)

// Verification methods. The method tells the collaborator layer whether the
// verdict is backed by the on-chain registry or by the search+analysis path.
const (
	MethodRegistry = "registry"
	MethodFallback = "fallback"
)

// EvidenceDoc is one candidate supporting document returned by an evidence
// search, in the source's own relevance order.
type EvidenceDoc struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract,omitempty"`
	SourceID string `json:"source_id,omitempty"`
	URL      string `json:"url"`
}

// Analysis is the structured verdict produced by the model analyzer.
// Verdict and Severity carry user facing labels ("True", "Misleading", ...),
// mapped from whatever the underlying model returns.
type Analysis struct {
	NormalizedClaim string   `json:"normalized_claim"`
	Verdict         string   `json:"verdict"`
	Severity        string   `json:"severity"`
	Explanation     string   `json:"explanation"`
	SourcesUsed     []string `json:"sources_used"`
}

// Source is one reference attached to a verification result.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VerificationResult is the outcome of one pipeline run. It is handed to the
// collaborator layer for persistence; this core never stores it.
//
// Invariant: OnChainVerified implies MatchedFactID is set and the matched
// fact was active at lookup time.
type VerificationResult struct {
	ID                 uuid.UUID `json:"id"`
	NormalizedClaim    string    `json:"normalized_claim"`
	Verdict            string    `json:"verdict"`
	Severity           string    `json:"severity"`
	Explanation        string    `json:"explanation"`
	Sources            []Source  `json:"sources"`
	Channel            string    `json:"channel"`
	OnChainVerified    bool      `json:"on_chain_verified"`
	MatchedFactID      string    `json:"matched_fact_id,omitempty"`
	VerificationMethod string    `json:"verification_method"`
	ExplorerURL        string    `json:"explorer_url,omitempty"`
}
