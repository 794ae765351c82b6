package sink

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resume-rag/internal/config"
)

// Client forwards extraction records to the spreadsheet webhook as a
// form-encoded POST. Any non-2xx response is a reportable failure; the
// caller decides whether it aborts anything.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(cfg *config.SinkConfig) *Client {
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Forward posts one field -> answer record.
func (c *Client) Forward(ctx context.Context, record map[string]string) error {
	form := url.Values{}
	for field, value := range record {
		form.Set(field, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sink request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sink returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
