package helper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==========================================
// Verification hash & certificate number
// ==========================================

// GenerateVerificationHash menghasilkan digest sha256 lowercase-hex (64 char)
// dari seed penerbitan. Pure function, tanpa side effect.
func GenerateVerificationHash(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// VerificationSeed membentuk seed penerbitan: user, course, dan timestamp
// presisi nanosecond supaya dua attempt untuk pasangan yang sama tidak pernah
// menghasilkan hash identik.
func VerificationSeed(userID, courseID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", userID.String(), courseID.String(), at.UnixNano())
}

// NewCertificateNumber membuat nomor sertifikat yang human-displayable:
// "<ORG_PREFIX>-<uuidv4>". Unik secara global lewat suffix random.
func NewCertificateNumber(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = "CERT"
	}
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// TruncateHash bentuk display hash untuk halaman verifikasi publik
// (8 karakter pertama + ellipsis), jangan tampilkan hash penuh di listing.
func TruncateHash(h string) string {
	if len(h) <= 8 {
		return h
	}
	return h[:8] + "..."
}
