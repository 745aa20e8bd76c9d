package registry

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthfactguardian/verifier-node/internal/config"
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
	"github.com/healthfactguardian/verifier-node/internal/core/ports"
	"github.com/healthfactguardian/verifier-node/pkg/cache"
)

func TestNewGateway_NotConfigured(t *testing.T) {
	ctx := context.Background()

	type testcase struct {
		name string
		cfg  config.Registry
	}
	testcases := []testcase{
		{"no rpc url", config.Registry{ContractAddress: "0x0000000000000000000000000000000000000001"}},
		{"no contract address", config.Registry{URL: "https://dream-rpc.somnia.network"}},
		{"nothing configured", config.Registry{}},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGateway(ctx, tt.cfg, cache.NewMemoryCache())
			require.NoError(t, err)

			assert.False(t, g.IsAvailable(ctx))
			assert.Empty(t, g.ExplorerURL())

			_, err = g.FactByHash(ctx, "0xabc")
			assert.ErrorIs(t, err, ports.ErrRegistryUnavailable)
			_, err = g.FactByID(ctx, "who-2025-0001")
			assert.ErrorIs(t, err, ports.ErrRegistryUnavailable)
			_, err = g.TotalFacts(ctx)
			assert.ErrorIs(t, err, ports.ErrRegistryUnavailable)
			_, err = g.Owner(ctx)
			assert.ErrorIs(t, err, ports.ErrRegistryUnavailable)
		})
	}
}

func TestNewGateway_InvalidContractAddress(t *testing.T) {
	_, err := NewGateway(context.Background(), config.Registry{
		URL:             "https://dream-rpc.somnia.network",
		ContractAddress: "not-an-address",
	}, cache.NewMemoryCache())
	require.Error(t, err)
}

func TestToFactStatus(t *testing.T) {
	g := &Gateway{}
	ctx := context.Background()

	hash := common.HexToHash("0xbeda37f93eb285172081b06886a1259b16b6f357b3e49b90e0cce5f0e8927364")
	fact := HealthFactRegistryFact{
		FactHash:       [32]byte(hash),
		FactId:         "who-2025-0001",
		Verdict:        1,
		Severity:       2,
		IssuedAt:       big.NewInt(1737331200),
		LastReviewedAt: big.NewInt(1737331200),
		Version:        big.NewInt(1),
		Status:         0,
		AddedBy:        common.HexToAddress("0x0000000000000000000000000000000000000009"),
		AddedAtBlock:   big.NewInt(1234),
	}

	got := g.toFactStatus(ctx, fact)

	assert.Equal(t, hash.Hex(), got.Hash)
	assert.Equal(t, "who-2025-0001", got.ID)
	assert.Equal(t, domain.VerdictFalse, got.Verdict)
	assert.Equal(t, domain.SeverityHigh, got.Severity)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, int64(1737331200), got.IssuedAt)
	assert.Equal(t, uint64(1), got.Version)
	assert.Equal(t, uint64(1234), got.AddedAtBlock)
}

func TestToFactStatus_UnknownCodesDefault(t *testing.T) {
	g := &Gateway{}
	fact := HealthFactRegistryFact{
		FactId:         "who-2025-0002",
		Verdict:        9,
		Severity:       9,
		Status:         9,
		IssuedAt:       big.NewInt(0),
		LastReviewedAt: big.NewInt(0),
		Version:        big.NewInt(0),
		AddedAtBlock:   big.NewInt(0),
	}

	got := g.toFactStatus(context.Background(), fact)

	assert.Equal(t, domain.VerdictUnproven, got.Verdict)
	assert.Equal(t, domain.SeverityLow, got.Severity)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestIsRevert(t *testing.T) {
	assert.True(t, isRevert(errors.New("execution reverted: Fact not found")))
	assert.False(t, isRevert(errors.New("connection refused")))
	assert.False(t, isRevert(nil))
}
