package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

// maxBody caps how much of a snapshot response is read.
const maxBody = 4 << 20

// Client fetches snapshots from a remote hostpulse endpoint.
type Client struct {
	url  string
	http *http.Client
}

// NewClient returns a Client for the snapshot endpoint at url.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

// Fetch performs one GET and decodes the snapshot.
func (c *Client) Fetch(ctx context.Context) (model.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return model.Snapshot{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Snapshot{}, fmt.Errorf("GET %s: %s", c.url, resp.Status)
	}
	var snap model.Snapshot
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Processes == nil {
		snap.Processes = []model.ProcessView{}
	}
	snap.Timestamp = time.Now()
	return snap, nil
}
