package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxSnapshotBody caps how much of a snapshot response is read.
const maxSnapshotBody = 1 << 20 // 1MB

// HTTPProvider polls an HTTP endpoint returning the same JSON object shape
// as FileProvider.
type HTTPProvider struct {
	URL    string
	client *http.Client
}

// NewHTTPProvider builds a provider for the given endpoint.
func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		URL:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch implements Provider.
func (p *HTTPProvider) Fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot endpoint returned %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBody))
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}

	snap, err := parseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}
