package helper

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestGenerateVerificationHash_Shape(t *testing.T) {
	h := GenerateVerificationHash("some-seed")
	require.True(t, hexRe.MatchString(h), "hash must be 64 lowercase hex chars, got %q", h)

	// deterministic on identical seed
	assert.Equal(t, h, GenerateVerificationHash("some-seed"))
	assert.NotEqual(t, h, GenerateVerificationHash("some-seed2"))
}

func TestVerificationSeed_UniquePerCall(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()

	// same (user, course) at different nanosecond timestamps must never
	// reproduce the same hash
	seen := make(map[string]struct{}, 1000)
	base := time.Now()
	for i := 0; i < 1000; i++ {
		seed := VerificationSeed(userID, courseID, base.Add(time.Duration(i)*time.Nanosecond))
		h := GenerateVerificationHash(seed)
		_, dup := seen[h]
		require.False(t, dup, "duplicate hash after %d trials", i)
		seen[h] = struct{}{}
	}
}

func TestVerificationSeed_ContainsNoPlaintextLeakInHash(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()
	h := GenerateVerificationHash(VerificationSeed(userID, courseID, time.Now()))

	assert.NotContains(t, h, userID.String())
	assert.NotContains(t, h, courseID.String())
}

func TestNewCertificateNumber(t *testing.T) {
	n := NewCertificateNumber("DOST02SSCP")
	require.True(t, strings.HasPrefix(n, "DOST02SSCP-"))

	suffix := strings.TrimPrefix(n, "DOST02SSCP-")
	_, err := uuid.Parse(suffix)
	require.NoError(t, err, "suffix must be a uuid, got %q", suffix)

	assert.NotEqual(t, n, NewCertificateNumber("DOST02SSCP"))

	// empty prefix falls back
	assert.True(t, strings.HasPrefix(NewCertificateNumber("  "), "CERT-"))
}

func TestTruncateHash(t *testing.T) {
	assert.Equal(t, "abcd1234...", TruncateHash("abcd1234deadbeef"))
	assert.Equal(t, "abcd", TruncateHash("abcd"))
}
