package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apierrors "holidaze/internal/errors"
	"holidaze/internal/session"
)

const (
	// DefaultBaseURL is the fixed remote API the client talks to.
	DefaultBaseURL = "https://v2.api.noroff.dev"

	apiKeyHeader = "X-Noroff-API-Key"
)

// Client translates typed application calls into requests against the
// remote REST surface. Every call is a single round trip: no retry, no
// caching; callers re-invoke to refresh.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	sessions *session.Store
}

func NewClient(baseURL, apiKey string, sessions *session.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{},
		sessions: sessions,
	}
}

// envelope is the remote API's response convention: payload under data,
// error objects under errors with the first message user-facing.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []upstreamError `json:"errors"`
}

type upstreamError struct {
	Message string `json:"message"`
}

// do issues one request and decodes the enveloped response into out.
// Transport failures and non-2xx statuses both come back as typed
// errors carrying fallback when the body supplies no message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	if sess, ok := c.sessions.Current(); ok {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apierrors.Network(err, fallback)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.Network(err, fallback)
	}

	var env envelope
	if len(raw) > 0 {
		// A body that is not the expected envelope is tolerated; the
		// status code still decides success below.
		json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fallback
		if len(env.Errors) > 0 && env.Errors[0].Message != "" {
			message = env.Errors[0].Message
		}
		return apierrors.Upstream(resp.StatusCode, message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}
