package tool

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// JobPostingFetcher downloads a job posting page and extracts its readable
// text, so the pipeline can take a posting URL instead of pasted JD text.
type JobPostingFetcher struct {
	client   *http.Client
	selector string
}

// JobPostingOption configures a JobPostingFetcher.
type JobPostingOption func(*JobPostingFetcher)

// WithJobPostingHTTPClient sets a custom HTTP client.
func WithJobPostingHTTPClient(client *http.Client) JobPostingOption {
	return func(f *JobPostingFetcher) {
		f.client = client
	}
}

// WithJobPostingSelector restricts extraction to a CSS selector, for job
// boards where the posting body lives in a known container.
func WithJobPostingSelector(selector string) JobPostingOption {
	return func(f *JobPostingFetcher) {
		f.selector = selector
	}
}

// NewJobPostingFetcher creates a fetcher with a 30s default timeout.
func NewJobPostingFetcher(opts ...JobPostingOption) *JobPostingFetcher {
	f := &JobPostingFetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		selector: "body",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the page and returns the posting text with scripts,
// styles and navigation chrome removed.
func (f *JobPostingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid job posting url: %w", err)
	}
	req.Header.Set("User-Agent", "skillgraph/0.1 (+job posting fetcher)")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("job posting fetch returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse job posting html: %w", err)
	}

	doc.Find("script, style, nav, header, footer, noscript").Remove()

	var lines []string
	doc.Find(f.selector).Each(func(_ int, sel *goquery.Selection) {
		for _, line := range strings.Split(sel.Text(), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	})

	text := strings.Join(lines, "\n")
	if text == "" {
		return "", fmt.Errorf("no text found at %s (selector %q)", url, f.selector)
	}
	return text, nil
}
