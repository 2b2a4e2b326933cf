// Package apiclient talks to the public REST API. It is the network
// submitter of the contact form.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"krushi/internal/domain/contact"
	"krushi/internal/ports/output"
)

var _ output.ContactSubmitter = (*Client)(nil)

const maxResponseBytes = 4 << 20

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// Client calls the API rooted at baseURL (e.g. "http://localhost:5000/api").
type Client struct {
	baseURL  string
	http     *http.Client
	language string
}

func New(baseURL string, timeout time.Duration, language string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		language: language,
	}
}

// SubmitContact posts the form. A response other than 2xx becomes a
// *output.SubmissionError carrying the server's message.
func (c *Client) SubmitContact(ctx context.Context, fields contact.Fields) (output.SubmissionResult, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return output.SubmissionResult{}, fmt.Errorf("encode contact: %w", err)
	}
	env, status, err := c.do(ctx, http.MethodPost, "/contact", body)
	if err != nil {
		return output.SubmissionResult{}, fmt.Errorf("post contact: %w", err)
	}
	if status < 200 || status > 299 || !env.Success {
		return output.SubmissionResult{}, &output.SubmissionError{
			Status:  status,
			Message: env.Message,
			Fields:  env.Errors,
		}
	}
	return output.SubmissionResult{Message: env.Message}, nil
}

// Catalog is the translation tree served for one language.
type Catalog struct {
	Language     string         `json:"language"`
	Locale       string         `json:"locale"`
	Direction    string         `json:"direction"`
	Translations map[string]any `json:"translations"`
}

// Translations fetches the site catalog for lang.
func (c *Client) Translations(ctx context.Context, lang string) (*Catalog, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/translations/"+url.PathEscape(lang), nil)
	if err != nil {
		return nil, fmt.Errorf("get translations: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get translations: unexpected status %d", status)
	}
	var cat Catalog
	if err := json.Unmarshal(env.Data, &cat); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	return &cat, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (envelope, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return envelope{}, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, 0, err
	}
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, resp.StatusCode, err
	}
	// Non-JSON error pages (proxies, load balancers) leave env empty.
	_ = json.Unmarshal(raw, &env)
	return env, resp.StatusCode, nil
}
