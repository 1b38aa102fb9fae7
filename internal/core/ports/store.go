package ports

// ManifestStore defines the interface for persisting rendered manifests.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Write atomically replaces the file at path with content.
	Write(path string, content []byte) error

	// Check returns domain.ErrManifestStale unless the file at path holds
	// exactly content. A missing file is stale.
	Check(path string, content []byte) error
}
