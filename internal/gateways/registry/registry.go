// Package registry contains the read-only gateway to the on-chain
// HealthFactRegistry contract.
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/healthfactguardian/verifier-node/internal/canonical"
	"github.com/healthfactguardian/verifier-node/internal/config"
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
	"github.com/healthfactguardian/verifier-node/internal/core/ports"
	"github.com/healthfactguardian/verifier-node/internal/log"
	"github.com/healthfactguardian/verifier-node/pkg/cache"
)

const availabilityCacheKey = "registry:available"

// Gateway queries registered health facts from the chain. It is constructed
// at startup and health-checked lazily: a node that cannot reach the chain
// still starts, verification just skips the registry.
type Gateway struct {
	client       *ethclient.Client
	caller       *HealthFactRegistryCaller
	contractAddr common.Address
	cfg          config.Registry
	cache        cache.Cache
}

// NewGateway dials the configured RPC endpoint and binds the registry
// contract. A missing RPC url or contract address yields a disabled gateway,
// not an error; only a malformed contract address is rejected.
func NewGateway(ctx context.Context, cfg config.Registry, c cache.Cache) (*Gateway, error) {
	g := &Gateway{cfg: cfg, cache: c}
	if cfg.URL == "" || cfg.ContractAddress == "" {
		log.Warn(ctx, "registry not configured, on-chain verification disabled")
		return g, nil
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid registry contract address <%s>", cfg.ContractAddress)
	}

	client, err := ethclient.Dial(cfg.URL)
	if err != nil {
		log.Warn(ctx, "cannot dial registry rpc, on-chain verification disabled", "url", cfg.URL, "err", err)
		return g, nil
	}
	g.client = client
	g.contractAddr = common.HexToAddress(cfg.ContractAddress)

	caller, err := NewHealthFactRegistryCaller(g.contractAddr, client)
	if err != nil {
		log.Warn(ctx, "cannot bind registry contract, on-chain verification disabled", "err", err)
		return g, nil
	}
	g.caller = caller

	log.Info(ctx, "fact registry gateway ready", "contract", g.contractAddr.Hex())
	return g, nil
}

// IsAvailable reports whether the registry can be queried. The probe result
// is cached so concurrent requests do not hammer the RPC endpoint.
func (g *Gateway) IsAvailable(ctx context.Context) bool {
	if g.caller == nil {
		return false
	}
	var available bool
	if g.cache.Get(ctx, availabilityCacheKey, &available) {
		return available
	}

	probeCtx, cancel := context.WithTimeout(ctx, g.cfg.RPCResponseTimeout)
	defer cancel()
	_, err := g.client.ChainID(probeCtx)
	available = err == nil
	if err != nil {
		log.Warn(ctx, "registry rpc unreachable", "err", err)
	}
	_ = g.cache.Set(ctx, availabilityCacheKey, available, g.cfg.AvailabilityCacheTTL)
	return available
}

// FactByHash retrieves the on-chain record of the fact with the given
// canonical hash. Returns (nil, nil) when no fact with that hash is
// registered.
func (g *Gateway) FactByHash(ctx context.Context, hash string) (*domain.FactStatus, error) {
	if g.caller == nil {
		return nil, fmt.Errorf("%w: not configured", ports.ErrRegistryUnavailable)
	}

	factHash := common.HexToHash(canonical.EnsurePrefix(hash))

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.RPCResponseTimeout)
	defer cancel()
	opts := &bind.CallOpts{Context: callCtx}

	existence, err := g.caller.CheckFactExists(opts, factHash)
	if err != nil {
		return nil, fmt.Errorf("%w: checkFactExists: %v", ports.ErrRegistryUnavailable, err)
	}
	if !existence.Exists {
		log.Debug(ctx, "fact not found on-chain", "hash", hash)
		return nil, nil
	}

	fact, err := g.caller.GetFactByHash(opts, factHash)
	if err != nil {
		return nil, fmt.Errorf("%w: getFactByHash: %v", ports.ErrRegistryUnavailable, err)
	}
	return g.toFactStatus(ctx, fact), nil
}

// FactByID retrieves the on-chain record of the fact with the given symbolic
// id. The contract reverts for unknown ids, which maps to (nil, nil).
func (g *Gateway) FactByID(ctx context.Context, id string) (*domain.FactStatus, error) {
	if g.caller == nil {
		return nil, fmt.Errorf("%w: not configured", ports.ErrRegistryUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.RPCResponseTimeout)
	defer cancel()

	fact, err := g.caller.GetFactById(&bind.CallOpts{Context: callCtx}, id)
	if err != nil {
		if isRevert(err) {
			log.Debug(ctx, "fact id not found on-chain", "id", id)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: getFactById: %v", ports.ErrRegistryUnavailable, err)
	}
	return g.toFactStatus(ctx, fact), nil
}

// TotalFacts returns the number of facts registered on-chain.
func (g *Gateway) TotalFacts(ctx context.Context) (uint64, error) {
	if g.caller == nil {
		return 0, fmt.Errorf("%w: not configured", ports.ErrRegistryUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.RPCResponseTimeout)
	defer cancel()

	total, err := g.caller.TotalFacts(&bind.CallOpts{Context: callCtx})
	if err != nil {
		return 0, fmt.Errorf("%w: totalFacts: %v", ports.ErrRegistryUnavailable, err)
	}
	return total.Uint64(), nil
}

// Owner returns the registry authority address.
func (g *Gateway) Owner(ctx context.Context) (string, error) {
	if g.caller == nil {
		return "", fmt.Errorf("%w: not configured", ports.ErrRegistryUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.RPCResponseTimeout)
	defer cancel()

	owner, err := g.caller.Owner(&bind.CallOpts{Context: callCtx})
	if err != nil {
		return "", fmt.Errorf("%w: owner: %v", ports.ErrRegistryUnavailable, err)
	}
	return owner.Hex(), nil
}

// ExplorerURL returns the block explorer page of the registry contract.
func (g *Gateway) ExplorerURL() string {
	if g.caller == nil || g.cfg.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s", strings.TrimSuffix(g.cfg.ExplorerURL, "/"), g.contractAddr.Hex())
}

func (g *Gateway) toFactStatus(ctx context.Context, fact HealthFactRegistryFact) *domain.FactStatus {
	verdict, ok := canonical.DecodeVerdict(fact.Verdict)
	if !ok {
		log.Warn(ctx, "unexpected verdict code on-chain", "id", fact.FactId, "code", fact.Verdict)
	}
	severity, ok := canonical.DecodeSeverity(fact.Severity)
	if !ok {
		log.Warn(ctx, "unexpected severity code on-chain", "id", fact.FactId, "code", fact.Severity)
	}
	status, ok := canonical.DecodeStatus(fact.Status)
	if !ok {
		log.Warn(ctx, "unexpected lifecycle code on-chain", "id", fact.FactId, "code", fact.Status)
	}

	return &domain.FactStatus{
		Hash:           common.Hash(fact.FactHash).Hex(),
		ID:             fact.FactId,
		Verdict:        verdict,
		Severity:       severity,
		IssuedAt:       fact.IssuedAt.Int64(),
		LastReviewedAt: fact.LastReviewedAt.Int64(),
		Version:        fact.Version.Uint64(),
		Status:         status,
		AddedBy:        fact.AddedBy.Hex(),
		AddedAtBlock:   fact.AddedAtBlock.Uint64(),
	}
}

func isRevert(err error) bool {
	return err != nil && strings.Contains(err.Error(), "execution reverted")
}
