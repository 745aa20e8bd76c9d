package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthfactguardian/verifier-node/internal/canonical"
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
	"github.com/healthfactguardian/verifier-node/internal/core/ports"
	"github.com/healthfactguardian/verifier-node/internal/log"
)

const (
	// maxEvidenceResults is how many candidate documents are requested from
	// the evidence source.
	maxEvidenceResults = 5
	// maxAnalyzedDocs bounds the documents handed to the analyzer as context.
	maxAnalyzedDocs = 5
	// maxResultSources is the number of sources backfilled into a result.
	maxResultSources = 3
	// maxSourceNameLen truncates long article titles in the sources list.
	maxSourceNameLen = 80
)

const safeFallbackExplanation = "The claim could not be verified because of a temporary system problem. " +
	"Treat it with caution and consult healthcare professionals or trusted sources such as the WHO before acting on it. " +
	"This system is for informational purposes only and does not provide medical advice."

// Verification runs the claim verification pipeline: authoritative on-chain
// registry first, literature search plus model analysis as fallback. It
// always produces a result; every capability failure degrades the verdict
// instead of surfacing an error.
type Verification struct {
	registry ports.RegistryGateway
	matcher  ports.ClaimMatcher
	evidence ports.EvidenceSource
	analyzer ports.Analyzer
}

// NewVerification returns a verification service over the given capabilities.
func NewVerification(registry ports.RegistryGateway, matcher ports.ClaimMatcher, evidence ports.EvidenceSource, analyzer ports.Analyzer) *Verification {
	return &Verification{
		registry: registry,
		matcher:  matcher,
		evidence: evidence,
		analyzer: analyzer,
	}
}

var _ ports.VerificationService = (*Verification)(nil)

// Verify runs one claim through the pipeline. A panic anywhere in the run is
// converted into the safe fallback result: the pipeline never fails closed.
func (s *Verification) Verify(ctx context.Context, claim, channel string) (result domain.VerificationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, "verification pipeline failure", fmt.Errorf("%v", r), "claim", claim)
			result = s.safeFallback(claim, channel)
		}
	}()

	if res, ok := s.checkRegistry(ctx, claim, channel); ok {
		return res
	}

	evidence := s.evidence.Search(ctx, claim, maxEvidenceResults)
	log.Info(ctx, "evidence search done", "docs", len(evidence))

	docs := evidence
	if len(docs) > maxAnalyzedDocs {
		docs = docs[:maxAnalyzedDocs]
	}
	analysis := s.analyzer.Analyze(ctx, claim, docs)

	return s.fallbackResult(channel, evidence, analysis)
}

// checkRegistry tries to settle the claim against the on-chain registry.
// Any failure along the way (registry down, no local candidate, hashing
// problem, lookup error, non-active fact) reports no hit so the pipeline
// falls through to the evidence path. Only an active on-chain fact counts
// as a registry verification.
func (s *Verification) checkRegistry(ctx context.Context, claim, channel string) (domain.VerificationResult, bool) {
	if !s.registry.IsAvailable(ctx) {
		log.Debug(ctx, "registry unavailable, using fallback verification")
		return domain.VerificationResult{}, false
	}

	fact, ok := s.matcher.MatchCandidate(claim)
	if !ok {
		return domain.VerificationResult{}, false
	}

	hash, err := canonical.HashJSON(fact.Raw)
	if err != nil {
		log.Warn(ctx, "cannot hash fact document", "id", fact.ID, "err", err)
		return domain.VerificationResult{}, false
	}

	status, err := s.registry.FactByHash(ctx, hash)
	if err != nil {
		log.Warn(ctx, "registry lookup failed", "id", fact.ID, "err", err)
		return domain.VerificationResult{}, false
	}
	if status == nil {
		log.Debug(ctx, "matched fact not registered on-chain", "id", fact.ID, "hash", hash)
		return domain.VerificationResult{}, false
	}
	if status.Status != domain.StatusActive {
		log.Info(ctx, "fact found on-chain but not active", "id", status.ID, "status", status.Status)
		return domain.VerificationResult{}, false
	}

	log.Info(ctx, "fact verified on-chain", "id", status.ID, "hash", hash)
	return s.registryResult(fact, status, channel), true
}

func (s *Verification) registryResult(fact *domain.Fact, status *domain.FactStatus, channel string) domain.VerificationResult {
	sources := make([]domain.Source, 0, maxResultSources)
	for i, ev := range fact.Evidence {
		if i == maxResultSources {
			break
		}
		sources = append(sources, domain.Source{Name: ev.Title, URL: ev.URL})
	}

	matchedID := status.ID
	if matchedID == "" {
		matchedID = fact.ID
	}

	return domain.VerificationResult{
		ID:                 uuid.New(),
		NormalizedClaim:    fact.ClaimText,
		Verdict:            status.Verdict.Title(),
		Severity:           status.Severity.Title(),
		Explanation:        fact.Summary,
		Sources:            sources,
		Channel:            channel,
		OnChainVerified:    true,
		MatchedFactID:      matchedID,
		VerificationMethod: domain.MethodRegistry,
		ExplorerURL:        s.registry.ExplorerURL(),
	}
}

// fallbackResult renders the evidence+analysis outcome. Documents the
// analyzer reported using always make the sources list; the first documents
// backfill it up to the limit; with no evidence at all, two well known
// health authority references are substituted so sources are never empty.
func (s *Verification) fallbackResult(channel string, evidence []domain.EvidenceDoc, analysis domain.Analysis) domain.VerificationResult {
	used := make(map[string]struct{}, len(analysis.SourcesUsed))
	for _, u := range analysis.SourcesUsed {
		used[u] = struct{}{}
	}

	var sources []domain.Source
	for _, doc := range evidence {
		_, wasUsed := used[doc.URL]
		if wasUsed || len(sources) < maxResultSources {
			sources = append(sources, domain.Source{Name: truncate(doc.Title, maxSourceNameLen), URL: doc.URL})
		}
	}
	if len(sources) == 0 {
		sources = wellKnownReferences()
	}

	return domain.VerificationResult{
		ID:                 uuid.New(),
		NormalizedClaim:    analysis.NormalizedClaim,
		Verdict:            analysis.Verdict,
		Severity:           analysis.Severity,
		Explanation:        analysis.Explanation,
		Sources:            sources,
		Channel:            channel,
		OnChainVerified:    false,
		VerificationMethod: domain.MethodFallback,
	}
}

// safeFallback is the terminal answer for an unexpected pipeline failure.
// A degraded-confidence verdict must stay distinguishable from a confident
// one, so verdict and explanation are fixed.
func (s *Verification) safeFallback(claim, channel string) domain.VerificationResult {
	return domain.VerificationResult{
		ID:                 uuid.New(),
		NormalizedClaim:    claim,
		Verdict:            "Unverified",
		Severity:           domain.SeverityMedium.Title(),
		Explanation:        safeFallbackExplanation,
		Sources:            wellKnownReferences()[:1],
		Channel:            channel,
		OnChainVerified:    false,
		VerificationMethod: domain.MethodFallback,
	}
}

func wellKnownReferences() []domain.Source {
	return []domain.Source{
		{Name: "World Health Organization (WHO)", URL: "https://www.who.int/health-topics"},
		{Name: "Centers for Disease Control and Prevention (CDC)", URL: "https://www.cdc.gov/"},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
