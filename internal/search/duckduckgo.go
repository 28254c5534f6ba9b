package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/util"
	"golang.org/x/net/html"
)

const duckDuckGoBaseURL = "https://html.duckduckgo.com"

// DuckDuckGo scrapes the DuckDuckGo HTML endpoint
type DuckDuckGo struct {
	baseURL    string
	region     string
	userAgent  string
	maxRetries int
	httpClient *http.Client
}

// NewDuckDuckGo creates a DuckDuckGo retriever
func NewDuckDuckGo(cfg Config) *DuckDuckGo {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = duckDuckGoBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	region := ""
	if cfg.Region != "" {
		lang := cfg.Language
		if lang == "" {
			lang = cfg.Region
		}
		region = strings.ToLower(cfg.Region + "-" + lang)
	}

	return &DuckDuckGo{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		region:     region,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		httpClient: util.NewHTTPClient(timeout, cfg.Proxy),
	}
}

// Search fetches the result page and parses it
func (d *DuckDuckGo) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	params := url.Values{}
	params.Set("q", query)
	if d.region != "" {
		params.Set("kl", d.region)
	}
	endpoint := d.baseURL + "/html/?" + params.Encode()

	var body []byte
	err := util.Retry(ctx, d.maxRetries, 500*time.Millisecond, 4*time.Second, func() error {
		var err error
		body, err = d.fetch(ctx, endpoint)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search: %w", err)
	}

	items, err := ParseDuckDuckGoHTML(string(body))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo parse: %w", err)
	}
	return limit(items, max), nil
}

func (d *DuckDuckGo) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, util.Permanent(fmt.Errorf("create request: %w", err))
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		if retryableStatus(resp.StatusCode) {
			return nil, err
		}
		return nil, util.Permanent(err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// ParseDuckDuckGoHTML extracts organic results from a DuckDuckGo HTML page.
// Ads are skipped and redirect links are decoded to their target URL.
func ParseDuckDuckGoHTML(page string) ([]model.EvidenceItem, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	var items []model.EvidenceItem
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if hasClass(n, "result--ad") {
				return
			}
			if n.Data == "a" && hasClass(n, "result__a") {
				if target := resolveResultURL(attr(n, "href")); target != "" {
					items = append(items, model.EvidenceItem{
						Title:   textContent(n),
						URL:     target,
						Snippet: snippetFor(n),
					})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return items, nil
}

// snippetFor finds the result__snippet belonging to the same result block as a title link
func snippetFor(link *html.Node) string {
	block := link.Parent
	for block != nil && !hasClass(block, "result__body") && !hasClass(block, "result") {
		block = block.Parent
	}
	if block == nil {
		return ""
	}

	var snippet string
	var find func(*html.Node)
	find = func(n *html.Node) {
		if snippet != "" {
			return
		}
		if n.Type == html.ElementNode && hasClass(n, "result__snippet") {
			snippet = textContent(n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(block)
	return snippet
}

// resolveResultURL decodes DuckDuckGo redirect links (//duckduckgo.com/l/?uddg=...)
func resolveResultURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if strings.HasSuffix(parsed.Hostname(), "duckduckgo.com") || parsed.Host == "" {
		target := parsed.Query().Get("uddg")
		if target == "" {
			return ""
		}
		parsed, err = url.Parse(target)
		if err != nil {
			return ""
		}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return model.CleanText(sb.String())
}
