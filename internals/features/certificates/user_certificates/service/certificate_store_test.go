package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certModel "sscacademy_backend/internals/features/certificates/user_certificates/model"
	helper "sscacademy_backend/internals/helpers"
)

func newCert(userID, courseID uuid.UUID) *certModel.CertificateModel {
	return &certModel.CertificateModel{
		CertificateUserID:           userID,
		CertificateCourseID:         courseID,
		CertificateNumber:           helper.NewCertificateNumber("DOST02SSCP"),
		CertificateVerificationHash: helper.GenerateVerificationHash(helper.VerificationSeed(userID, courseID, time.Now())),
		CertificateStatus:           certModel.CertificateStatusActive,
		CertificateIssuedAt:         time.Now(),
	}
}

func TestCertificateStore_CreateSecondActiveConflicts(t *testing.T) {
	db := openTestDB(t)
	store := NewCertificateStore(db)
	ctx := context.Background()

	userID, courseID := uuid.New(), uuid.New()

	first := newCert(userID, courseID)
	require.NoError(t, store.Create(ctx, first))
	require.NotEqual(t, uuid.Nil, first.CertificateID)

	// attempt kedua untuk pasangan yang sama harus kalah di index
	second := newCert(userID, courseID)
	err := store.Create(ctx, second)
	require.ErrorIs(t, err, ErrConflict)

	// kedua pengamat melihat record pemenang yang sama
	var count int64
	require.NoError(t, db.Model(&certModel.CertificateModel{}).
		Where("certificate_user_id = ? AND certificate_course_id = ? AND certificate_status = ?",
			userID, courseID, certModel.CertificateStatusActive).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	winner, err := store.GetActiveByUserAndCourse(ctx, userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateID, winner.CertificateID)

	// pasangan course lain tidak terpengaruh
	require.NoError(t, store.Create(ctx, newCert(userID, uuid.New())))
}

func TestCertificateStore_RevokeIdempotentAndReissuable(t *testing.T) {
	db := openTestDB(t)
	store := NewCertificateStore(db)
	ctx := context.Background()

	userID, courseID := uuid.New(), uuid.New()
	cert := newCert(userID, courseID)
	require.NoError(t, store.Create(ctx, cert))

	revoked, err := store.Revoke(ctx, cert.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, certModel.CertificateStatusRevoked, revoked.CertificateStatus)

	// field imutabel tidak berubah
	assert.Equal(t, cert.CertificateNumber, revoked.CertificateNumber)
	assert.Equal(t, cert.CertificateVerificationHash, revoked.CertificateVerificationHash)

	// revoke ulang = no-op sukses
	again, err := store.Revoke(ctx, cert.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, certModel.CertificateStatusRevoked, again.CertificateStatus)

	// index hanya menjaga row AKTIF, jadi pasangan ini boleh terbit ulang
	require.NoError(t, store.Create(ctx, newCert(userID, courseID)))

	_, err = store.Revoke(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCertificateStore_LookupAndList(t *testing.T) {
	db := openTestDB(t)
	store := NewCertificateStore(db)
	ctx := context.Background()

	userID := uuid.New()

	older := newCert(userID, uuid.New())
	older.CertificateIssuedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, store.Create(ctx, older))

	newer := newCert(userID, uuid.New())
	require.NoError(t, store.Create(ctx, newer))

	_, err := store.Revoke(ctx, older.CertificateID)
	require.NoError(t, err)

	byID, err := store.GetByID(ctx, newer.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, newer.CertificateNumber, byID.CertificateNumber)

	byNumber, err := store.GetByNumber(ctx, older.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, older.CertificateID, byNumber.CertificateID)

	_, err = store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetByNumber(ctx, "DOST02SSCP-"+uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	// list milik user: revoked tetap kelihatan, urut terbaru dulu
	list, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.CertificateID, list[0].CertificateID)
	assert.Equal(t, certModel.CertificateStatusRevoked, list[1].CertificateStatus)

	empty, err := store.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
