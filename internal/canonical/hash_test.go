package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthfactguardian/verifier-node/internal/canonical"
)

const (
	// sha256 of the canonical form {"a":2,"b":1}.
	simpleDocHash = "0xd3626ac30a87e6f7a6428233b3c68299976865fa5508e4267c5415c76af7a772"

	// sha256 of the canonical form of the full sample fact below.
	sampleFactHash = "0xbeda37f93eb285172081b06886a1259b16b6f357b3e49b90e0cce5f0e8927364"
)

const sampleFactJSON = `{
  "id": "who-2025-0001",
  "claim_text": "Drinking hot water cures COVID-19",
  "verdict": "false",
  "severity": "high",
  "summary": "There is no evidence that drinking hot water cures COVID-19.",
  "topics": ["covid-19", "home remedies"],
  "evidence": [
    {
      "url": "https://www.who.int/news-room/questions-and-answers",
      "title": "WHO COVID-19 Mythbusters",
      "accessed_at": "2025-01-15T00:00:00Z"
    }
  ],
  "issued_at": "2025-01-20T00:00:00Z",
  "status": "active"
}`

func TestHashJSON(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		got, err := canonical.HashJSON([]byte(`{"b":1,"a":2}`))
		require.NoError(t, err)
		assert.Equal(t, simpleDocHash, got)
	})

	t.Run("sample fact document", func(t *testing.T) {
		got, err := canonical.HashJSON([]byte(sampleFactJSON))
		require.NoError(t, err)
		assert.Equal(t, sampleFactHash, got)
	})

	t.Run("key order does not change the hash", func(t *testing.T) {
		h1, err := canonical.HashJSON([]byte(`{"b":1,"a":2}`))
		require.NoError(t, err)
		h2, err := canonical.HashJSON([]byte(`{ "a": 2, "b": 1 }`))
		require.NoError(t, err)
		assert.Equal(t, h1, h2)
	})

	t.Run("value change changes the hash", func(t *testing.T) {
		h1, err := canonical.HashJSON([]byte(`{"a":2,"b":1}`))
		require.NoError(t, err)
		h2, err := canonical.HashJSON([]byte(`{"a":2,"b":2}`))
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := canonical.HashJSON([]byte(`{"a":`))
		require.Error(t, err)
	})
}

func TestHashesEqual(t *testing.T) {
	type testcase struct {
		name     string
		a        string
		b        string
		expected bool
	}
	testcases := []testcase{
		{
			name:     "identical",
			a:        simpleDocHash,
			b:        simpleDocHash,
			expected: true,
		},
		{
			name:     "prefix vs no prefix",
			a:        simpleDocHash,
			b:        simpleDocHash[2:],
			expected: true,
		},
		{
			name:     "case insensitive",
			a:        "0xABCDEF00",
			b:        "abcdef00",
			expected: true,
		},
		{
			name:     "different digests",
			a:        simpleDocHash,
			b:        sampleFactHash,
			expected: false,
		},
		{
			name:     "empty strings",
			a:        "",
			b:        "",
			expected: true,
		},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonical.HashesEqual(tt.a, tt.b))
		})
	}
}

func TestEnsurePrefix(t *testing.T) {
	assert.Equal(t, "0xabc", canonical.EnsurePrefix("abc"))
	assert.Equal(t, "0xabc", canonical.EnsurePrefix("0xabc"))
	assert.Equal(t, "0xabc", canonical.EnsurePrefix("0xABC"))
}
