package canonical

import (
	"strings"

	"github.com/healthfactguardian/verifier-node/internal/core/domain"
)

// The numeric values below mirror the enum declarations of the
// HealthFactRegistry contract. The order is a wire contract, not an
// alphabetical convenience, and must never be reordered.

var verdictCodes = map[domain.Verdict]uint8{
	domain.VerdictTrue:          0,
	domain.VerdictFalse:         1,
	domain.VerdictMisleading:    2,
	domain.VerdictUnproven:      3,
	domain.VerdictPartiallyTrue: 4,
}

var verdictLabels = map[uint8]domain.Verdict{
	0: domain.VerdictTrue,
	1: domain.VerdictFalse,
	2: domain.VerdictMisleading,
	3: domain.VerdictUnproven,
	4: domain.VerdictPartiallyTrue,
}

var severityCodes = map[domain.Severity]uint8{
	domain.SeverityLow:      0,
	domain.SeverityMedium:   1,
	domain.SeverityHigh:     2,
	domain.SeverityCritical: 3,
}

var severityLabels = map[uint8]domain.Severity{
	0: domain.SeverityLow,
	1: domain.SeverityMedium,
	2: domain.SeverityHigh,
	3: domain.SeverityCritical,
}

var statusCodes = map[domain.FactLifecycle]uint8{
	domain.StatusActive:     0,
	domain.StatusSuperseded: 1,
	domain.StatusWithdrawn:  2,
}

var statusLabels = map[uint8]domain.FactLifecycle{
	0: domain.StatusActive,
	1: domain.StatusSuperseded,
	2: domain.StatusWithdrawn,
}

// EncodeVerdict returns the wire value of a verdict label.
// Unknown labels encode as unproven.
func EncodeVerdict(v domain.Verdict) uint8 {
	if code, ok := verdictCodes[domain.Verdict(strings.ToLower(string(v)))]; ok {
		return code
	}
	return verdictCodes[domain.VerdictUnproven]
}

// DecodeVerdict returns the label for a wire value. The second return value
// is false for values outside the registry contract, in which case the label
// defaults to unproven and the caller should log a data integrity warning.
func DecodeVerdict(code uint8) (domain.Verdict, bool) {
	if label, ok := verdictLabels[code]; ok {
		return label, true
	}
	return domain.VerdictUnproven, false
}

// EncodeSeverity returns the wire value of a severity label.
// Unknown labels encode as low.
func EncodeSeverity(s domain.Severity) uint8 {
	if code, ok := severityCodes[domain.Severity(strings.ToLower(string(s)))]; ok {
		return code
	}
	return severityCodes[domain.SeverityLow]
}

// DecodeSeverity returns the label for a wire value, defaulting to low for
// unknown values.
func DecodeSeverity(code uint8) (domain.Severity, bool) {
	if label, ok := severityLabels[code]; ok {
		return label, true
	}
	return domain.SeverityLow, false
}

// EncodeStatus returns the wire value of a lifecycle label.
// Unknown labels encode as active.
func EncodeStatus(s domain.FactLifecycle) uint8 {
	if code, ok := statusCodes[domain.FactLifecycle(strings.ToLower(string(s)))]; ok {
		return code
	}
	return statusCodes[domain.StatusActive]
}

// DecodeStatus returns the label for a wire value, defaulting to active for
// unknown values.
func DecodeStatus(code uint8) (domain.FactLifecycle, bool) {
	if label, ok := statusLabels[code]; ok {
		return label, true
	}
	return domain.StatusActive, false
}
