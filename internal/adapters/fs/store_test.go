package fs_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cmakegen/internal/adapters/fs"
	"go.trai.ch/cmakegen/internal/core/domain"
)

func TestStore_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeLists.txt")
	store := fs.NewStore()

	require.NoError(t, store.Write(path, []byte("project(a)\n")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "project(a)\n", string(got))

	// Overwrites replace the whole file.
	require.NoError(t, store.Write(path, []byte("b\n")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may be left behind")
}

func TestStore_Write_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "CMakeLists.txt")

	err := fs.NewStore().Write(path, []byte("x"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestWriteFailed.Error())
}

func TestStore_Check(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeLists.txt")
	require.NoError(t, os.WriteFile(path, []byte("project(a)\n"), 0o600))

	store := fs.NewStore()

	tests := []struct {
		name      string
		path      string
		content   string
		wantStale bool
	}{
		{name: "identical", path: path, content: "project(a)\n"},
		{name: "different", path: path, content: "project(b)\n", wantStale: true},
		{name: "missing trailing newline", path: path, content: "project(a)", wantStale: true},
		{name: "longer", path: path, content: "project(a)\n\n", wantStale: true},
		{name: "missing file", path: filepath.Join(dir, "nope.txt"), content: "project(a)\n", wantStale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Check(tt.path, []byte(tt.content))
			if !tt.wantStale {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrManifestStale.Error())
		})
	}
}

func TestStore_Check_AfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CMakeLists.txt")
	store := fs.NewStore()
	content := []byte("project(mymod)\n\n")

	require.NoError(t, store.Write(path, content))
	require.NoError(t, store.Check(path, content))
	require.Error(t, store.Check(path, []byte("project(other)\n\n")))
}

func TestDigest(t *testing.T) {
	assert.Equal(t, strconv.FormatUint(xxhash.Sum64String("hello"), 16), fs.Digest([]byte("hello")))
	assert.NotEqual(t, fs.Digest([]byte("a")), fs.Digest([]byte("b")))
}
