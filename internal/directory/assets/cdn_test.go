package assets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCDNServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *CDNStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewCDNStore(server.URL, "test-api-key")
}

func TestCDNStoreUpload(t *testing.T) {
	_, store := newCDNServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/media/employee_profiles", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "avatar.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"public_id":  "employee_profiles/xyz123",
			"secure_url": "https://cdn.example.com/employee_profiles/xyz123",
		})
	})

	asset, err := store.Upload(context.Background(), Blob{
		Data: []byte("image bytes"),
		Name: "avatar.png",
	}, "employee_profiles")
	require.NoError(t, err)
	assert.Equal(t, "employee_profiles/xyz123", asset.Key)
	assert.Equal(t, "https://cdn.example.com/employee_profiles/xyz123", asset.URL)
}

func TestCDNStoreUploadServerError(t *testing.T) {
	_, store := newCDNServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := store.Upload(context.Background(), Blob{Data: []byte("x"), Name: "a.png"}, "f")
	assert.Error(t, err)
}

func TestCDNStoreUploadMissingPublicID(t *testing.T) {
	_, store := newCDNServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	_, err := store.Upload(context.Background(), Blob{Data: []byte("x"), Name: "a.png"}, "f")
	assert.Error(t, err)
}

func TestCDNStoreDelete(t *testing.T) {
	var gotPath string
	_, store := newCDNServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, store.Delete(context.Background(), "employee_profiles/xyz123"))
	assert.Equal(t, "/v1/media/employee_profiles/xyz123", gotPath)
}

func TestCDNStoreDeleteMissingKeyTolerated(t *testing.T) {
	_, store := newCDNServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, store.Delete(context.Background(), "gone"))
}

func TestCDNStoreDeleteServerError(t *testing.T) {
	_, store := newCDNServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Error(t, store.Delete(context.Background(), "key"))
}

func TestCDNStoreDisplayURL(t *testing.T) {
	store := NewCDNStore("https://cdn.example.com", "k")
	assert.Equal(t, "https://cdn.example.com/v1/media/abc", store.DisplayURL("abc"))
}
