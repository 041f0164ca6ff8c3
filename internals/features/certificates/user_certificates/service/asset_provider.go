package service

import (
	"os"
	"path/filepath"
)

// AssetProvider menyuplai aset branding (background, ribbon, logo, font)
// untuk renderer. Aset yang absen bukan error — renderer punya fallback —
// makanya kontraknya (bytes, ok) dan bukan (bytes, error).
type AssetProvider interface {
	LoadAsset(name string) ([]byte, bool)
}

// DirAssets membaca aset dari satu direktori (CERT_ASSET_DIR).
type DirAssets struct {
	Dir string
}

func (d DirAssets) LoadAsset(name string) ([]byte, bool) {
	// filepath.Base menutup path traversal lewat nama aset
	b, err := os.ReadFile(filepath.Join(d.Dir, filepath.Base(name)))
	if err != nil {
		return nil, false
	}
	return b, true
}

// MapAssets implementasi in-memory; dipakai test supaya renderer bisa diuji
// tanpa filesystem.
type MapAssets map[string][]byte

func (m MapAssets) LoadAsset(name string) ([]byte, bool) {
	b, ok := m[name]
	return b, ok
}
