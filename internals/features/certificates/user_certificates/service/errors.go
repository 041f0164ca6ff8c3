package service

import "errors"

// Taksonomi error core sertifikat. Controller memetakan sentinel ini ke HTTP;
// jangan pernah downgrade ke error generik — caller harus bisa membedakan
// "not found" vs "revoked" vs "transient".
var (
	// Identifier tidak lolos cek bentuk; store tidak pernah disentuh.
	ErrInvalidIdentifier = errors.New("invalid certificate identifier")

	// Identifier valid, record tidak ada (atau milik user lain saat scoping).
	ErrNotFound = errors.New("certificate not found")

	// Sudah ada sertifikat aktif untuk (user, course); di-absorb oleh
	// issuance engine, tidak pernah sampai ke caller.
	ErrConflict = errors.New("certificate already issued for this user and course")

	// Pipeline dokumen gagal menghasilkan output (mis. encode QR gagal).
	ErrRenderFailure = errors.New("certificate render failed")

	// Persistence collaborator tidak bisa dihubungi; transient, caller retry.
	ErrStoreUnavailable = errors.New("certificate store unavailable")
)
