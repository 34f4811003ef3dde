package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/haryoiro/golha/internal/catalog"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/haryoiro/golha/internal/version"
)

// ErrBadStatus is returned when a server answers with a non-2xx status
var ErrBadStatus = errors.New("unexpected HTTP status")

// Client fetches the catalog resource and media over HTTP or from disk.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  version.GetUserAgent(),
	}
}

// IsRemote reports whether source is an http(s) URL
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// get issues a GET and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s (%s)", ErrBadStatus, resp.Status, url)
	}

	return resp.Body, nil
}

// Open returns a reader for source, a URL or a local path
func (c *Client) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if IsRemote(source) {
		return c.get(ctx, source)
	}
	return os.Open(source)
}

// FetchCatalog loads and decodes the program list from source
func (c *Client) FetchCatalog(ctx context.Context, source string) ([]*structures.Program, error) {
	logger.Info("Loading catalog from %s", source)

	body, err := c.Open(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	defer body.Close()

	programs, err := catalog.Decode(body)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded %d programs", len(programs))
	return programs, nil
}

// Download copies the media at url into w and returns the number of bytes
func (c *Client) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	body, err := c.Open(ctx, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("failed to download %s: %w", url, err)
	}
	return n, nil
}

// OpenMedia returns a seekable stream of the media at source. Remote media
// is read fully into memory so the decoder can seek and report its length.
func (c *Client) OpenMedia(ctx context.Context, source string) (io.ReadSeekCloser, error) {
	if !IsRemote(source) {
		return os.Open(source)
	}

	body, err := c.get(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media: %w", err)
	}
	logger.Debug("Fetched %d bytes from %s", len(data), source)

	return nopSeekCloser{bytes.NewReader(data)}, nil
}

type nopSeekCloser struct {
	*bytes.Reader
}

func (nopSeekCloser) Close() error { return nil }
