package service

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	courseModel "sscacademy_backend/internals/features/lms/courses/model"
	userModel "sscacademy_backend/internals/features/lms/users/model"
)

func renderInputFixture() *RenderInput {
	grade := 95.0
	return &RenderInput{
		Certificate: &certModel.CertificateModel{
			CertificateID:               uuid.New(),
			CertificateNumber:           "DOST02SSCP-" + uuid.NewString(),
			CertificateVerificationHash: "abc123",
			CertificateGrade:            &grade,
			CertificateStatus:           certModel.CertificateStatusActive,
			CertificateIssuedAt:         time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
		},
		Course: &courseModel.CourseModel{
			CourseTitle:  "Smart Water Management for LGUs",
			CourseSkills: []string{"Telemetry", "Water Quality Analysis"},
		},
		User: &userModel.UserModel{
			UserName:         "Maria Clara Santos",
			UserOrganization: "LGU Tuguegarao",
		},
	}
}

func TestRenderer_ProducesDecodablePNGWithoutAssets(t *testing.T) {
	// MapAssets kosong: semua aset branding absen, fallback harus jalan
	r := NewCertificateRenderer(MapAssets{}, "https://sscacademy.dost02onedata.com")

	out, err := r.Render(context.Background(), renderInputFixture())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err, "output must be a valid PNG")
	assert.Equal(t, renderWidth, img.Bounds().Dx())
	assert.Equal(t, renderHeight, img.Bounds().Dy())
}

func TestRenderer_NilAssetProvider(t *testing.T) {
	r := NewCertificateRenderer(nil, "https://sscacademy.dost02onedata.com")

	out, err := r.Render(context.Background(), renderInputFixture())
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestRenderer_CorruptAssetFallsBack(t *testing.T) {
	// aset ada tapi bukan image valid → degrade, bukan gagal
	r := NewCertificateRenderer(MapAssets{
		assetBackground: []byte("definitely not a png"),
		assetRibbon:     []byte{0x00, 0x01},
	}, "https://sscacademy.dost02onedata.com")

	out, err := r.Render(context.Background(), renderInputFixture())
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestRenderer_MissingOptionalFields(t *testing.T) {
	r := NewCertificateRenderer(MapAssets{}, "https://sscacademy.dost02onedata.com")

	in := renderInputFixture()
	in.Certificate.CertificateGrade = nil
	in.Course = nil
	in.User = nil

	out, err := r.Render(context.Background(), in)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
}

func TestRenderer_NilCertificateFails(t *testing.T) {
	r := NewCertificateRenderer(MapAssets{}, "https://sscacademy.dost02onedata.com")

	_, err := r.Render(context.Background(), nil)
	assert.ErrorIs(t, err, ErrRenderFailure)

	_, err = r.Render(context.Background(), &RenderInput{})
	assert.ErrorIs(t, err, ErrRenderFailure)
}

func TestRenderer_QREncodeFailureIsFatal(t *testing.T) {
	// URL verifikasi melewati kapasitas payload QR → encode gagal. Area
	// verifikasi tidak boleh blank diam-diam, jadi render-nya yang gagal.
	base := "https://sscacademy.dost02onedata.com/" + strings.Repeat("x", 4096)
	r := NewCertificateRenderer(MapAssets{}, base)

	out, err := r.Render(context.Background(), renderInputFixture())
	assert.ErrorIs(t, err, ErrRenderFailure)
	assert.Nil(t, out)
}

func TestRenderer_CancelledContext(t *testing.T) {
	r := NewCertificateRenderer(MapAssets{}, "https://sscacademy.dost02onedata.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Render(ctx, renderInputFixture())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_VerificationURL(t *testing.T) {
	id := uuid.New()

	r := NewCertificateRenderer(MapAssets{}, "https://sscacademy.dost02onedata.com")
	assert.Equal(t, "https://sscacademy.dost02onedata.com/verify/"+id.String(), r.VerificationURL(id))

	// trailing slash di base tidak boleh menghasilkan double slash
	r = NewCertificateRenderer(MapAssets{}, "https://sscacademy.dost02onedata.com/")
	assert.Equal(t, "https://sscacademy.dost02onedata.com/verify/"+id.String(), r.VerificationURL(id))
}

func TestRenderer_FileName(t *testing.T) {
	cert := &certModel.CertificateModel{CertificateNumber: "DOST02SSCP-abc"}
	assert.Equal(t, "certificate-DOST02SSCP-abc.png", FileName(cert))
}
