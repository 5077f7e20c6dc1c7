package mailing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Client posts new subscribers to the mailing list service. Callers treat
// registration as best effort: log the error and move on.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Register subscribes an email address. A client with no configured endpoint
// is a no-op.
func (c *Client) Register(ctx context.Context, email string) error {
	if c.endpoint == "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"email":  email,
		"status": "subscribed",
	})
	if err != nil {
		return errors.Wrap(err, "encode subscriber")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build mailing list request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "mailing list request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("mailing list returned status %d", resp.StatusCode)
	}
	return nil
}
