package canonical_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthfactguardian/verifier-node/internal/canonical"
)

func TestCanonicalize(t *testing.T) {
	type testcase struct {
		name     string
		input    any
		expected string
	}
	testcases := []testcase{
		{
			name:     "keys are sorted",
			input:    map[string]any{"b": 1, "a": 2},
			expected: `{"a":2,"b":1}`,
		},
		{
			name: "nested keys are sorted at every level",
			input: map[string]any{
				"z": map[string]any{"b": true, "a": nil},
				"a": []any{map[string]any{"y": 1, "x": 2}},
			},
			expected: `{"a":[{"x":2,"y":1}],"z":{"a":null,"b":true}}`,
		},
		{
			name:     "array order is preserved",
			input:    []any{3, 1, 2},
			expected: `[3,1,2]`,
		},
		{
			name:     "no insignificant whitespace",
			input:    map[string]any{"k": []any{1, "a", true, nil}},
			expected: `{"k":[1,"a",true,null]}`,
		},
		{
			name:     "non-ascii text stays raw utf-8",
			input:    map[string]any{"note": "café über 东京"},
			expected: `{"note":"café über 东京"}`,
		},
		{
			name:     "string escapes",
			input:    map[string]any{"note": "café \a \"q\" \\ \n\t"},
			expected: "{\"note\":\"café \\u0007 \\\"q\\\" \\\\ \\n\\t\"}",
		},
		{
			name:     "integer valued float emitted without fraction",
			input:    map[string]any{"n": float64(42)},
			expected: `{"n":42}`,
		},
		{
			name:     "fractional float emitted in shortest form",
			input:    map[string]any{"n": 0.25},
			expected: `{"n":0.25}`,
		},
		{
			name:     "struct input is normalized like a map",
			input:    reorderedPair{B: 1, A: 2},
			expected: `{"a":2,"b":1}`,
		},
		{
			name:     "empty containers",
			input:    map[string]any{"a": []any{}, "b": map[string]any{}},
			expected: `{"a":[],"b":{}}`,
		},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := canonical.Canonicalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

type reorderedPair struct {
	B int `json:"b"`
	A int `json:"a"`
}

func TestCanonicalizeJSON_KeyOrderInvariance(t *testing.T) {
	type testcase struct {
		name string
		doc1 string
		doc2 string
	}
	testcases := []testcase{
		{
			name: "flat object",
			doc1: `{"b":1,"a":2}`,
			doc2: `{"a":2,"b":1}`,
		},
		{
			name: "nested object",
			doc1: `{"outer":{"y":true,"x":[1,2]},"id":"f1"}`,
			doc2: `{"id":"f1","outer":{"x":[1,2],"y":true}}`,
		},
		{
			name: "with formatting noise",
			doc1: "{\n  \"b\": 1,\n  \"a\": 2\n}",
			doc2: `{"a": 2, "b": 1}`,
		},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			c1, err := canonical.CanonicalizeJSON([]byte(tt.doc1))
			require.NoError(t, err)
			c2, err := canonical.CanonicalizeJSON([]byte(tt.doc2))
			require.NoError(t, err)
			assert.Equal(t, string(c1), string(c2))
		})
	}
}

func TestCanonicalizeJSON_NumberFidelity(t *testing.T) {
	// int64-range integers must survive the round trip untouched, where a
	// float64 based decoder would already have lost precision.
	got, err := canonical.CanonicalizeJSON([]byte(`{"ts":1737331200,"big":9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, `{"big":9007199254740993,"ts":1737331200}`, string(got))
}

func TestCanonicalizeJSON_Malformed(t *testing.T) {
	for _, doc := range []string{``, `{`, `{"a":1} trailing`, `{"a":}`} {
		t.Run(fmt.Sprintf("%q", doc), func(t *testing.T) {
			_, err := canonical.CanonicalizeJSON([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestCanonicalize_Deterministic(t *testing.T) {
	input := map[string]any{
		"claim_text": "test",
		"topics":     []any{"a", "b"},
		"issued_at":  "2025-01-20T00:00:00Z",
	}
	first, err := canonical.Canonicalize(input)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := canonical.Canonicalize(input)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}
}
