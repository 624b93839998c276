package client

import (
	"backend-faq/internal/faq"
	"backend-faq/internal/models"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

const faqsPath = "/api/faqs"

// Client is an HTTP client for the FAQ API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new client for the API at baseURL
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("FAQ API URL not configured. Set FAQ_API_URL or pass --url")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchDataset downloads the full FAQ dataset
func (c *Client) FetchDataset(ctx context.Context) (*models.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+faqsPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return faq.Decode(body, faq.Defaults{})
}
