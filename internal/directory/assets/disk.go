package assets

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps assets on the local filesystem under a single root.
// The HTTP server exposes the root read-only, so upload-time URLs are
// permanent: baseURL + "/" + key.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads root: %w", err)
	}
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Root returns the directory served as static uploads.
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Upload(_ context.Context, blob Blob, folder string) (Asset, error) {
	if len(blob.Data) == 0 {
		return Asset{}, fmt.Errorf("empty upload")
	}
	key := path.Join(folder, uuid.NewString()+sanitizeExt(blob.Name))

	full := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return Asset{}, fmt.Errorf("failed to create asset folder: %w", err)
	}
	if err := os.WriteFile(full, blob.Data, 0o644); err != nil {
		return Asset{}, fmt.Errorf("failed to write asset: %w", err)
	}

	return Asset{Key: key, URL: s.DisplayURL(key)}, nil
}

func (s *DiskStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func (s *DiskStore) DisplayURL(key string) string {
	return s.baseURL + "/" + key
}

// sanitizeExt keeps the original extension when it looks like one,
// discarding the rest of the client-supplied name.
func sanitizeExt(name string) string {
	ext := strings.ToLower(path.Ext(path.Base(name)))
	if ext == "" || len(ext) > 10 || strings.ContainsAny(ext, "\\/") {
		return ""
	}
	return ext
}
