package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultSearchEndpoint = "https://html.duckduckgo.com/html/"

// WebSearchTool queries DuckDuckGo's HTML endpoint and extracts result
// snippets. No API key required.
type WebSearchTool struct {
	Endpoint   string
	MaxResults int
	Client     *http.Client
}

func (t *WebSearchTool) Name() string { return "web_search" }

func (t *WebSearchTool) Description() string {
	return "Searches the web for recent information about a claim. Input: a search query."
}

func (t *WebSearchTool) Execute(ctx context.Context, input string) (string, error) {
	endpoint := t.Endpoint
	if endpoint == "" {
		endpoint = defaultSearchEndpoint
	}
	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	maxResults := t.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?q="+url.QueryEscape(input), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "veritas-agent/1.0")
	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("search status %d", res.StatusCode)
	}

	results := parseSearchResults(res.Body, maxResults)
	if len(results) == 0 {
		return "No search results found.", nil
	}
	return strings.Join(results, "\n"), nil
}

// parseSearchResults walks the result page and collects the text of anchors
// marked as result titles or snippets.
func parseSearchResults(r io.Reader, max int) []string {
	doc, err := html.Parse(r)
	if err != nil {
		return nil
	}
	var results []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(results) >= max {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__snippet") {
			if txt := strings.TrimSpace(nodeText(n)); txt != "" {
				results = append(results, "- "+txt)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
