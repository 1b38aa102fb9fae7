// Package fs persists rendered manifests on the local filesystem.
package fs

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/renameio/v2"
	"go.trai.ch/cmakegen/internal/core/domain"
	"go.trai.ch/cmakegen/internal/core/ports"
	"go.trai.ch/zerr"
)

// manifestPerm matches what CMake users expect for a checked-in CMakeLists.txt.
const manifestPerm = 0o644

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write replaces the file at path with content. Readers see either the old
// file or the new one, never a partial write.
func (s *Store) Write(path string, content []byte) error {
	if err := renameio.WriteFile(path, content, manifestPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

// Check compares the file at path with content byte for byte. On mismatch
// the error carries the xxhash digests of both versions.
func (s *Store) Check(path string, content []byte) error {
	onDisk, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			stale := zerr.With(domain.ErrManifestStale, "path", path)
			return zerr.With(stale, "reason", "file does not exist")
		}
		return zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	if bytes.Equal(onDisk, content) {
		return nil
	}

	stale := zerr.With(domain.ErrManifestStale, "path", path)
	stale = zerr.With(stale, "want_digest", Digest(content))
	return zerr.With(stale, "got_digest", Digest(onDisk))
}

// Digest returns the hex-encoded xxhash64 of content.
func Digest(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}
