package ports

import (
	"context"
	"errors"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

// ErrRegistryUnavailable reports a transport or configuration problem
// talking to the on-chain registry. It is a degraded state, not a failure:
// the verification pipeline proceeds without the registry.
var ErrRegistryUnavailable = errors.New("fact registry unavailable")

// RegistryGateway is the read-only capability over the on-chain fact
// registry. Lookups return (nil, nil) when the fact is not registered;
// transport and configuration problems wrap ErrRegistryUnavailable.
// Implementations never perform write operations.
type RegistryGateway interface {
	// IsAvailable reports whether the registry can be queried. Probing is
	// cached, callers may invoke it once per request without cost concerns.
	IsAvailable(ctx context.Context) bool
	// FactByHash looks up a fact by its canonical content hash, with or
	// without the 0x prefix.
	FactByHash(ctx context.Context, hash string) (*domain.FactStatus, error)
	// FactByID looks up a fact by its symbolic identifier.
	FactByID(ctx context.Context, id string) (*domain.FactStatus, error)
	// TotalFacts returns the number of facts registered on-chain.
	TotalFacts(ctx context.Context) (uint64, error)
	// ExplorerURL returns the block explorer page of the registry contract,
	// or the empty string when no contract is configured.
	ExplorerURL() string
}
