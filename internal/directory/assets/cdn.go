package assets

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CDNStore talks to a media-CDN HTTP API: multipart upload into a folder,
// delete by public id. The CDN may rotate delivery URLs, so DisplayURL is
// recomputed from the key instead of trusting the stored upload-time URL.
type CDNStore struct {
	client  *resty.Client
	baseURL string
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

func NewCDNStore(baseURL, apiKey string) *CDNStore {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second)
	return &CDNStore{client: client, baseURL: baseURL}
}

func (s *CDNStore) Upload(ctx context.Context, blob Blob, folder string) (Asset, error) {
	var result uploadResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", blob.Name, bytes.NewReader(blob.Data)).
		SetResult(&result).
		Post("/v1/media/" + folder)
	if err != nil {
		return Asset{}, fmt.Errorf("cdn upload failed: %w", err)
	}
	if resp.IsError() {
		return Asset{}, fmt.Errorf("cdn upload failed: %s", resp.Status())
	}
	if result.PublicID == "" {
		return Asset{}, fmt.Errorf("cdn upload returned no public id")
	}
	return Asset{Key: result.PublicID, URL: result.SecureURL}, nil
}

func (s *CDNStore) Delete(ctx context.Context, key string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Delete("/v1/media/" + key)
	if err != nil {
		return fmt.Errorf("cdn delete failed: %w", err)
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		return fmt.Errorf("cdn delete failed: %s", resp.Status())
	}
	return nil
}

func (s *CDNStore) DisplayURL(key string) string {
	return fmt.Sprintf("%s/v1/media/%s", s.baseURL, key)
}
