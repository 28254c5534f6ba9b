package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/util"
)

const serperBaseURL = "https://google.serper.dev"

// Serper queries the Serper Google Search API
type Serper struct {
	apiKey     string
	baseURL    string
	region     string
	language   string
	maxRetries int
	httpClient *http.Client
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num,omitempty"`
	GL  string `json:"gl,omitempty"`
	HL  string `json:"hl,omitempty"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// NewSerper creates a Serper retriever
func NewSerper(cfg Config) (*Serper, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: Serper API key is required (set SERPER_API_KEY)", model.ErrConfiguration)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = serperBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Serper{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		region:     cfg.Region,
		language:   cfg.Language,
		maxRetries: cfg.MaxRetries,
		httpClient: util.NewHTTPClient(timeout, cfg.Proxy),
	}, nil
}

// Search posts the query and maps organic results
func (s *Serper) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	body, err := json.Marshal(serperRequest{Q: query, Num: max, GL: s.region, HL: s.language})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var resp serperResponse
	err = util.Retry(ctx, s.maxRetries, 500*time.Millisecond, 4*time.Second, func() error {
		return s.post(ctx, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}

	items := make([]model.EvidenceItem, 0, len(resp.Organic))
	for _, o := range resp.Organic {
		items = append(items, model.EvidenceItem{Title: o.Title, URL: o.Link, Snippet: o.Snippet})
	}
	return limit(items, max), nil
}

func (s *Serper) post(ctx context.Context, body []byte, out *serperResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return util.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		if retryableStatus(resp.StatusCode) {
			return err
		}
		return util.Permanent(err)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return util.Permanent(fmt.Errorf("unmarshal response: %w", err))
	}
	return nil
}
