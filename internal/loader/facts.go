// Package loader loads the locally held authoritative fact documents and
// matches incoming claims against them.
package loader

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
	"github.com/healthfactguardian/verifier-node/internal/log"
)

// FactStore holds the fact documents published by the registry authority.
// These are the off-chain JSON counterparts of the on-chain records: their
// canonical hash is the lookup key. The store is read-only after load.
type FactStore struct {
	facts []domain.Fact
}

// NewFactStore loads every *.json document in dir. Malformed documents are
// skipped with a warning so a single bad file cannot disable registry
// matching. A missing or empty directory yields an empty store.
func NewFactStore(ctx context.Context, dir string) *FactStore {
	s := &FactStore{}
	if dir == "" {
		log.Warn(ctx, "facts directory not configured, registry matching disabled")
		return s
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		log.Warn(ctx, "cannot list facts directory", "dir", dir, "err", err)
		return s
	}

	for _, path := range paths {
		fact, err := readFact(path)
		if err != nil {
			log.Warn(ctx, "skipping malformed fact document", "file", path, "err", err)
			continue
		}
		s.facts = append(s.facts, fact)
	}

	log.Info(ctx, "fact store loaded", "dir", dir, "facts", len(s.facts))
	return s
}

// MatchCandidate returns the first known fact whose claim text contains the
// given claim, both sides normalized to lowercase and trimmed. Substring
// containment is deliberately simple and documented behavior: it can be
// replaced through the ClaimMatcher port without touching the pipeline.
func (s *FactStore) MatchCandidate(claim string) (*domain.Fact, bool) {
	normalized := normalizeClaim(claim)
	if normalized == "" {
		return nil, false
	}
	for i := range s.facts {
		if strings.Contains(normalizeClaim(s.facts[i].ClaimText), normalized) {
			return &s.facts[i], true
		}
	}
	return nil, false
}

// Len returns the number of loaded facts.
func (s *FactStore) Len() int {
	return len(s.facts)
}

func readFact(path string) (domain.Fact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Fact{}, err
	}
	var fact domain.Fact
	if err := json.Unmarshal(raw, &fact); err != nil {
		return domain.Fact{}, err
	}
	// Raw keeps the document byte-exact: the canonical hash must cover every
	// field of the source file, including ones this struct does not model.
	fact.Raw = raw
	return fact, nil
}

func normalizeClaim(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
