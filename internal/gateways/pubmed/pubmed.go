// Package pubmed implements the evidence source over the NCBI E-utilities
// API (ESearch + ESummary).
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/healthfactguardian/verifier-node/internal/config"
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
	"github.com/healthfactguardian/verifier-node/internal/log"
	client "github.com/healthfactguardian/verifier-node/pkg/http"
)

// Terms shorter than the configured minimum or present in this list never
// make it into a search query. This is a tunable heuristic, not a contract.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "can": {}, "will": {}, "does": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "being": {},
}

var wordRe = regexp.MustCompile(`[a-zA-Z]+`)

// Service searches the medical literature for claim evidence.
type Service struct {
	cfg    config.PubMed
	client *client.Client
}

// NewService returns an evidence source backed by the NCBI E-utilities API.
func NewService(cfg config.PubMed, httpClient *client.Client) *Service {
	return &Service{cfg: cfg, client: httpClient}
}

// Search returns up to maxResults articles relevant to the claim, in the
// API's own relevance order. Any transport failure or malformed response is
// logged and yields an empty result.
func (s *Service) Search(ctx context.Context, claim string, maxResults int) []domain.EvidenceDoc {
	if maxResults <= 0 {
		maxResults = s.cfg.MaxResults
	}

	query := s.buildQuery(claim)
	ids, err := s.searchIDs(ctx, query, maxResults)
	if err != nil {
		log.Warn(ctx, "literature search failed", "err", err)
		return nil
	}
	if len(ids) == 0 {
		return nil
	}

	docs, err := s.fetchSummaries(ctx, ids)
	if err != nil {
		log.Warn(ctx, "literature summary fetch failed", "err", err)
		return nil
	}
	return docs
}

// buildQuery extracts search terms from the claim: stopwords removed, short
// words dropped, capped at the configured number of terms and AND-joined.
// A claim with no usable terms falls back to its leading text.
func (s *Service) buildQuery(claim string) string {
	var terms []string
	for _, w := range wordRe.FindAllString(strings.ToLower(claim), -1) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		if len(w) < s.cfg.MinTermLength {
			continue
		}
		terms = append(terms, w)
		if len(terms) == s.cfg.MaxTerms {
			break
		}
	}
	if len(terms) == 0 {
		if len(claim) > maxFallbackQueryLen {
			return claim[:maxFallbackQueryLen]
		}
		return claim
	}
	return strings.Join(terms, " AND ")
}

const maxFallbackQueryLen = 100

type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

func (s *Service) searchIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {fmt.Sprint(maxResults)},
		"retmode": {"json"},
		"sort":    {"relevance"},
	}
	body, err := s.client.Get(ctx, fmt.Sprintf("%s/esearch.fcgi?%s", s.baseURL(), params.Encode()))
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return resp.ESearchResult.IDList, nil
}

type esummaryAuthor struct {
	Name string `json:"name"`
}

type esummaryArticle struct {
	Title   string           `json:"title"`
	Authors []esummaryAuthor `json:"authors"`
}

func (s *Service) fetchSummaries(ctx context.Context, ids []string) ([]domain.EvidenceDoc, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"json"},
	}
	body, err := s.client.Get(ctx, fmt.Sprintf("%s/esummary.fcgi?%s", s.baseURL(), params.Encode()))
	if err != nil {
		return nil, err
	}

	// The result object maps each id to its article, plus a "uids" index key.
	var resp struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing esummary response: %w", err)
	}

	docs := make([]domain.EvidenceDoc, 0, len(ids))
	for _, id := range ids {
		raw, ok := resp.Result[id]
		if !ok {
			continue
		}
		var article esummaryArticle
		if err := json.Unmarshal(raw, &article); err != nil {
			log.Debug(ctx, "skipping malformed article summary", "id", id, "err", err)
			continue
		}
		docs = append(docs, domain.EvidenceDoc{
			Title:    titleOrDefault(article.Title),
			Abstract: abstractFromAuthors(article.Authors),
			SourceID: id,
			URL:      fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", id),
		})
	}
	return docs, nil
}

func (s *Service) baseURL() string {
	return strings.TrimSuffix(s.cfg.URL, "/")
}

func titleOrDefault(title string) string {
	if title == "" {
		return "No title available"
	}
	return title
}

// abstractFromAuthors builds the short context line shown to the analyzer.
// Full abstracts would need an extra EFetch round trip per article.
func abstractFromAuthors(authors []esummaryAuthor) string {
	if len(authors) == 0 {
		return "Abstract not available via summary API"
	}
	names := make([]string, 0, maxAuthors)
	for i, a := range authors {
		if i == maxAuthors {
			break
		}
		names = append(names, a.Name)
	}
	return "Authors: " + strings.Join(names, ", ")
}

const maxAuthors = 3
