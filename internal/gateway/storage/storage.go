package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUploadRejected: the storage service refused the object (quota,
// policy, bad content type). Not retried; the user re-submits.
var ErrUploadRejected = errors.New("storage: upload rejected")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client uploads pickup-proof photos to the hosted object store. Keys are
// namespaced by deal and timestamped so uploads never overwrite each
// other; the resulting public URL is what gets persisted on the deal.
type Client struct {
	baseURL string
	bucket  string
	apiKey  string
	http    httpDoer
	now     func() time.Time
}

func New(baseURL, bucket, apiKey string, doer httpDoer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
		apiKey:  apiKey,
		http:    doer,
		now:     time.Now,
	}
}

// PickupProofKey builds the object key for a deal's pickup photo.
func (c *Client) PickupProofKey(dealID string) string {
	return fmt.Sprintf("deals/%s/pickup_%d.jpg", dealID, c.now().UTC().Unix())
}

// UploadPickupProof stores the photo and returns its public URL.
func (c *Client) UploadPickupProof(ctx context.Context, dealID, contentType string, photo io.Reader) (string, error) {
	key := c.PickupProofKey(dealID)

	uploadURL := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, photo)
	if err != nil {
		return "", fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)
	// refuse to replace an existing object, uploads are append-only
	req.Header.Set("x-upsert", "false")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadRejected, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return c.PublicURL(key), nil
}

// PublicURL maps an object key to its publicly readable address.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, key)
}
