package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

// Client posts submissions to a contact endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for endpoint. A nil httpClient gets a 10s
// timeout.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string { return c.endpoint }

// Send posts s as JSON. Transport failures and non-2xx statuses return a
// *errors.SubmissionError.
func (c *Client) Send(ctx context.Context, s Submission) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return nexuserrors.NewSubmissionError(0, fmt.Errorf("encode submission: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nexuserrors.NewSubmissionError(0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nexuserrors.NewSubmissionError(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var body errorBody
	msg := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return nexuserrors.NewSubmissionError(resp.StatusCode, errors.New(msg))
}
