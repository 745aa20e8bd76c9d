package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

func TestVerdictTitle(t *testing.T) {
	type testcase struct {
		verdict  domain.Verdict
		expected string
	}
	testcases := []testcase{
		{domain.VerdictTrue, "True"},
		{domain.VerdictFalse, "False"},
		{domain.VerdictMisleading, "Misleading"},
		{domain.VerdictUnproven, "Unproven"},
		{domain.VerdictPartiallyTrue, "Partially True"},
	}
	for _, tt := range testcases {
		t.Run(string(tt.verdict), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.verdict.Title())
		})
	}
}

func TestSeverityTitle(t *testing.T) {
	assert.Equal(t, "Low", domain.SeverityLow.Title())
	assert.Equal(t, "Medium", domain.SeverityMedium.Title())
	assert.Equal(t, "High", domain.SeverityHigh.Title())
	assert.Equal(t, "Critical", domain.SeverityCritical.Title())
}
