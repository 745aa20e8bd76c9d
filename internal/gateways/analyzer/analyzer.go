// Package analyzer evaluates health claims with a language model, backed by
// either a local Ollama runtime or the OpenAI API. The backend is picked at
// construction time; the pipeline only ever sees the Analyzer port.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/healthfactguardian/verifier-node/internal/config"
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
	"github.com/healthfactguardian/verifier-node/internal/core/ports"
	"github.com/healthfactguardian/verifier-node/internal/log"
	client "github.com/healthfactguardian/verifier-node/pkg/http"
)

const systemPrompt = "You are a medical fact-checking assistant. Provide accurate, evidence-based analysis while maintaining safety and never giving personal medical advice."

const promptTemplate = `You are a medical fact-checking AI assistant. Analyze the following health claim using the provided evidence from medical literature.

CLAIM TO VERIFY:
%q
%s

INSTRUCTIONS:
1. Normalize the claim into a clear, concise statement
2. Determine the verdict: "True", "False", "Misleading", or "Unverified"
3. Assess severity: "Low", "Medium", or "High" (based on health impact if false information spreads)
4. Provide a simple 2-3 sentence explanation in non-technical language
5. List which sources you used (if any)

SAFETY REQUIREMENTS:
- NEVER provide personal medical advice
- ALWAYS recommend consulting healthcare professionals
- Use cautious, evidence-based language
- If evidence is weak/absent, use "Unverified"
- For dangerous claims, use severity "High"

Return ONLY a JSON object with this exact structure:
{
  "normalized_claim": "clear statement of the claim",
  "verdict": "True|False|Misleading|Unverified",
  "severity": "Low|Medium|High",
  "explanation": "2-3 sentence explanation in simple language",
  "sources_used": ["source URL 1", "source URL 2"]
}`

// maxEvidenceInPrompt bounds how many documents are handed to the model.
const maxEvidenceInPrompt = 5

// completer is the raw model capability: prompt in, json text out.
type completer interface {
	complete(ctx context.Context, system, prompt string) (string, error)
}

// Service adapts a model backend to the Analyzer port. It owns the prompt,
// the response validation, and the safe fallback; the backends only move
// text.
type Service struct {
	backend completer
}

// New returns the analyzer selected by configuration.
func New(ctx context.Context, cfg config.Analyzer, httpClient *client.Client) (*Service, error) {
	switch cfg.Provider {
	case config.AnalyzerProviderOpenAI:
		log.Info(ctx, "analysis backend: openai", "model", cfg.Model)
		return &Service{backend: newOpenAI(cfg)}, nil
	case config.AnalyzerProviderOllama:
		log.Info(ctx, "analysis backend: ollama", "model", cfg.Model)
		return &Service{backend: newOllama(cfg, httpClient)}, nil
	default:
		return nil, fmt.Errorf("unknown analyzer provider <%s>", cfg.Provider)
	}
}

// Analyze runs the claim and evidence through the model. It never fails:
// a backend error or a structurally incomplete model response degrades to
// the fixed safe analysis.
func (s *Service) Analyze(ctx context.Context, claim string, evidence []domain.EvidenceDoc) domain.Analysis {
	prompt := buildPrompt(claim, evidence)

	raw, err := s.backend.complete(ctx, systemPrompt, prompt)
	if err != nil {
		log.Warn(ctx, "model analysis failed, using safe fallback", "err", err)
		return Fallback(claim)
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		log.Warn(ctx, "model response rejected, using safe fallback", "err", err)
		return Fallback(claim)
	}
	return analysis
}

var _ ports.Analyzer = (*Service)(nil)

func buildPrompt(claim string, evidence []domain.EvidenceDoc) string {
	var b strings.Builder
	if len(evidence) == 0 {
		b.WriteString("\n\nNo specific medical evidence found in the literature for this claim.")
	} else {
		b.WriteString("\n\nAvailable Medical Evidence:\n")
		for i, doc := range evidence {
			if i == maxEvidenceInPrompt {
				break
			}
			fmt.Fprintf(&b, "\n%d. Title: %s\n", i+1, doc.Title)
			fmt.Fprintf(&b, "   URL: %s\n", doc.URL)
			if doc.Abstract != "" {
				fmt.Fprintf(&b, "   Info: %s\n", truncate(doc.Abstract, maxAbstractLen))
			}
		}
	}
	return fmt.Sprintf(promptTemplate, claim, b.String())
}

const maxAbstractLen = 200

// parseAnalysis decodes the model's json answer and enforces the response
// contract: every required field present and non-empty.
func parseAnalysis(raw string) (domain.Analysis, error) {
	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &analysis); err != nil {
		return domain.Analysis{}, fmt.Errorf("parsing analysis json: %w", err)
	}

	for field, value := range map[string]string{
		"normalized_claim": analysis.NormalizedClaim,
		"verdict":          analysis.Verdict,
		"severity":         analysis.Severity,
		"explanation":      analysis.Explanation,
	} {
		if strings.TrimSpace(value) == "" {
			return domain.Analysis{}, fmt.Errorf("analysis response missing required field %s", field)
		}
	}

	if analysis.SourcesUsed == nil {
		analysis.SourcesUsed = []string{}
	}
	return analysis, nil
}

// cleanJSONResponse strips markdown code fences some models wrap around
// their json answers.
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Fallback is the fixed safe analysis returned when the model cannot be
// reached or answers out of contract. The pipeline's availability guarantee
// depends on this response, it is part of the analyzer contract.
func Fallback(claim string) domain.Analysis {
	return domain.Analysis{
		NormalizedClaim: strings.TrimSpace(claim),
		Verdict:         "Unverified",
		Severity:        "Medium",
		Explanation: "We were unable to verify this claim at this time. " +
			"Please consult healthcare professionals and check trusted sources like WHO, CDC, or ICMR for accurate health information. " +
			"This system is for informational purposes only and does not provide medical advice.",
		SourcesUsed: []string{},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
