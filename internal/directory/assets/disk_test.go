package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreUpload(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	blob := Blob{Data: []byte("image bytes"), Name: "avatar.PNG", ContentType: "image/png"}
	asset, err := store.Upload(ctx, blob, "employee_profiles")
	require.NoError(t, err)

	assert.True(t, filepath.IsLocal(asset.Key), "key must stay inside the root")
	assert.Contains(t, asset.Key, "employee_profiles/")
	assert.Equal(t, ".png", filepath.Ext(asset.Key), "extension is kept lowercased")
	assert.Equal(t, "http://localhost:8080/uploads/"+asset.Key, asset.URL)

	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(asset.Key)))
	require.NoError(t, err)
	assert.Equal(t, blob.Data, data)
}

func TestDiskStoreUploadEmpty(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), Blob{Name: "avatar.png"}, "employee_profiles")
	assert.Error(t, err)
}

func TestDiskStoreDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	asset, err := store.Upload(ctx, Blob{Data: []byte("x"), Name: "a.jpg"}, "company_profiles")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, asset.Key))
	_, err = os.Stat(filepath.Join(store.Root(), filepath.FromSlash(asset.Key)))
	assert.True(t, os.IsNotExist(err), "file should be gone")

	// Deleting an already-missing key is not an error.
	assert.NoError(t, store.Delete(ctx, asset.Key))
}

func TestDiskStoreDisplayURL(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://cdn.example.com/uploads")
	require.NoError(t, err)

	assert.Equal(t, "http://cdn.example.com/uploads/company_profiles/abc.png",
		store.DisplayURL("company_profiles/abc.png"))
}

func TestSanitizeExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"avatar.png", ".png"},
		{"AVATAR.JPEG", ".jpeg"},
		{"noext", ""},
		{"weird.superlongextension", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeExt(tt.name), tt.name)
	}
}
