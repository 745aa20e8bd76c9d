package domain

import (
	"encoding/json"
	"strings"
)

// Verdict is the closed set of verdict labels a fact or analysis can carry.
// The labels and their numeric wire values are a contract with the
// HealthFactRegistry contract, see the canonical package.
type Verdict string

// Verdict labels
const (
	VerdictTrue          Verdict = "true"
	VerdictFalse         Verdict = "false"
	VerdictMisleading    Verdict = "misleading"
	VerdictUnproven      Verdict = "unproven"
	VerdictPartiallyTrue Verdict = "partially_true"
)

// Severity grades the health impact of a claim spreading unchecked.
type Severity string

// Severity labels
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// FactLifecycle is the on-chain lifecycle status of a registered fact.
type FactLifecycle string

// Lifecycle labels
const (
	StatusActive     FactLifecycle = "active"
	StatusSuperseded FactLifecycle = "superseded"
	StatusWithdrawn  FactLifecycle = "withdrawn"
)

// EvidenceItem is one supporting reference attached to an authoritative fact.
type EvidenceItem struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Checksum   string `json:"checksum,omitempty"`
	AccessedAt string `json:"accessed_at"`
}

// Fact is the authoritative unit verified on-chain. Raw holds the exact json
// document the fact was loaded from; the canonical hash is always computed
// over Raw, never over this struct, so that any field present in the source
// document participates in the hash.
type Fact struct {
	ID        string          `json:"id"`
	ClaimText string          `json:"claim_text"`
	Verdict   Verdict         `json:"verdict"`
	Severity  Severity        `json:"severity"`
	Summary   string          `json:"summary"`
	Topics    []string        `json:"topics"`
	Evidence  []EvidenceItem  `json:"evidence"`
	IssuedAt  string          `json:"issued_at"`
	Status    FactLifecycle   `json:"status"`
	Raw       json.RawMessage `json:"-"`
}

// FactStatus is the on-chain record of a registered fact as returned by the
// registry contract.
type FactStatus struct {
	Hash           string
	ID             string
	Verdict        Verdict
	Severity       Severity
	IssuedAt       int64
	LastReviewedAt int64
	Version        uint64
	Status         FactLifecycle
	AddedBy        string
	AddedAtBlock   uint64
}

// Title renders a verdict label for user facing output,
// e.g. "partially_true" becomes "Partially True".
func (v Verdict) Title() string {
	return titleLabel(string(v))
}

// Title renders a severity label for user facing output.
func (s Severity) Title() string {
	return titleLabel(string(s))
}

func titleLabel(label string) string {
	words := strings.Split(strings.ReplaceAll(label, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
