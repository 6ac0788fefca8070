package imagepkg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the cat endpoint queried when no override is configured.
const DefaultBaseURL = "https://cataas.com/cat"

// EscapeDataString percent-encodes s for use as a query component.
// Only RFC 3986 unreserved characters are left as-is; a space becomes %20.
func EscapeDataString(s string) string {
	// QueryEscape already keeps exactly the unreserved set; a literal '+'
	// comes out as %2B, so every remaining '+' stands for a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildURL appends the caption as a text query parameter when it is non-empty.
func BuildURL(base, text string) string {
	if text == "" {
		return base
	}
	return base + "?text=" + EscapeDataString(text)
}

// Fetcher downloads the raw encoded image bytes.
type Fetcher struct {
	client  *resty.Client
	baseURL string
	out     io.Writer
	log     *zap.Logger
}

// NewFetcher returns a Fetcher that sends requests through client and prints
// the generated URL to out.
func NewFetcher(client *resty.Client, baseURL string, out io.Writer, log *zap.Logger) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{client: client, baseURL: baseURL, out: out, log: log}
}

// Fetch issues a single GET and returns the response body. No retry is made.
func (f *Fetcher) Fetch(ctx context.Context, text string) ([]byte, error) {
	u := BuildURL(f.baseURL, text)
	fmt.Fprintf(f.out, "Generated URL: %s\n", u)

	resp, err := f.client.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, &OpError{Op: "fetch image", Kind: KindFetch, Err: err}
	}
	if !resp.IsSuccess() {
		f.log.Debug("unexpected status",
			zap.String("url", u),
			zap.Int("status", resp.StatusCode()))
		return nil, &OpError{
			Op:   "fetch image",
			Kind: KindFetch,
			Path: u,
			Err:  fmt.Errorf("response status code does not indicate success: %d (%s)", resp.StatusCode(), http.StatusText(resp.StatusCode())),
		}
	}

	body := resp.Body()
	f.log.Debug("image downloaded",
		zap.String("url", u),
		zap.Int("bytes", len(body)),
		zap.String("content_type", resp.Header().Get("Content-Type")))
	return body, nil
}
