package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthfactguardian/verifier-node/internal/canonical"
	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

func TestVerdictWireValues(t *testing.T) {
	type testcase struct {
		label domain.Verdict
		code  uint8
	}
	testcases := []testcase{
		{domain.VerdictTrue, 0},
		{domain.VerdictFalse, 1},
		{domain.VerdictMisleading, 2},
		{domain.VerdictUnproven, 3},
		{domain.VerdictPartiallyTrue, 4},
	}
	for _, tt := range testcases {
		t.Run(string(tt.label), func(t *testing.T) {
			assert.Equal(t, tt.code, canonical.EncodeVerdict(tt.label))
			label, known := canonical.DecodeVerdict(tt.code)
			assert.True(t, known)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestSeverityWireValues(t *testing.T) {
	type testcase struct {
		label domain.Severity
		code  uint8
	}
	testcases := []testcase{
		{domain.SeverityLow, 0},
		{domain.SeverityMedium, 1},
		{domain.SeverityHigh, 2},
		{domain.SeverityCritical, 3},
	}
	for _, tt := range testcases {
		t.Run(string(tt.label), func(t *testing.T) {
			assert.Equal(t, tt.code, canonical.EncodeSeverity(tt.label))
			label, known := canonical.DecodeSeverity(tt.code)
			assert.True(t, known)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestStatusWireValues(t *testing.T) {
	type testcase struct {
		label domain.FactLifecycle
		code  uint8
	}
	testcases := []testcase{
		{domain.StatusActive, 0},
		{domain.StatusSuperseded, 1},
		{domain.StatusWithdrawn, 2},
	}
	for _, tt := range testcases {
		t.Run(string(tt.label), func(t *testing.T) {
			assert.Equal(t, tt.code, canonical.EncodeStatus(tt.label))
			label, known := canonical.DecodeStatus(tt.code)
			assert.True(t, known)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestEncodeCaseInsensitive(t *testing.T) {
	assert.Equal(t, uint8(1), canonical.EncodeVerdict(domain.Verdict("False")))
	assert.Equal(t, uint8(2), canonical.EncodeSeverity(domain.Severity("HIGH")))
	assert.Equal(t, uint8(1), canonical.EncodeStatus(domain.FactLifecycle("Superseded")))
}

func TestEncodeUnknownLabels(t *testing.T) {
	assert.Equal(t, uint8(3), canonical.EncodeVerdict(domain.Verdict("bogus")))
	assert.Equal(t, uint8(0), canonical.EncodeSeverity(domain.Severity("bogus")))
	assert.Equal(t, uint8(0), canonical.EncodeStatus(domain.FactLifecycle("bogus")))
}

func TestDecodeUnknownCodes(t *testing.T) {
	verdict, known := canonical.DecodeVerdict(99)
	assert.False(t, known)
	assert.Equal(t, domain.VerdictUnproven, verdict)

	severity, known := canonical.DecodeSeverity(99)
	assert.False(t, known)
	assert.Equal(t, domain.SeverityLow, severity)

	status, known := canonical.DecodeStatus(99)
	assert.False(t, known)
	assert.Equal(t, domain.StatusActive, status)
}
