// Package assets abstracts the external image storage behind the
// directory records. Every profile and employee row exclusively owns one
// asset binding; the store holds the bytes and is reached only through
// the opaque key.
package assets

import (
	"context"
)

// Asset is the binding returned by an upload: the opaque storage key and
// the URL the content was retrievable under at upload time.
type Asset struct {
	Key string
	URL string
}

// Blob is an in-memory file received from a request.
type Blob struct {
	Data        []byte
	Name        string
	ContentType string
}

// Store is the asset store adapter. Writes to it are never wrapped in a
// transaction with the record store; callers own the ordering.
type Store interface {
	// Upload stores the blob under the given folder and returns its binding.
	Upload(ctx context.Context, blob Blob, folder string) (Asset, error)
	// Delete removes the blob by key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// DisplayURL returns the current retrieval URL for a key, for stores
	// whose upload-time URLs are short-lived.
	DisplayURL(key string) string
}
