// Package fetch downloads Advent of Code puzzle inputs.
package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aocday/internal/errors"
	"github.com/NielsdaWheelz/aocday/internal/logging"
	"github.com/NielsdaWheelz/aocday/internal/version"
)

// Coordinate identifies one puzzle. Year and Day are interpolated into the
// URL as given; they are not parsed or range checked.
type Coordinate struct {
	Year string
	Day  string
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout for the whole request including the body. Zero means none.
	Timeout time.Duration
	// Transport overrides http.DefaultTransport (tests).
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// Client issues input requests.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// Result describes a completed request. The body has already been
// written to the caller's writer.
type Result struct {
	URL        string
	StatusCode int
	Bytes      int64
}

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	return &Client{
		client: &http.Client{
			Transport: opts.Transport,
			Timeout:   opts.Timeout,
			// a 3xx is the response; its body is written like any other
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		logger:  logging.OrNop(opts.Logger),
	}
}

// InputURL returns <base>/<year>/day/<day>/input.
func (c *Client) InputURL(coord Coordinate) string {
	return c.baseURL + "/" + coord.Year + "/day/" + coord.Day + "/input"
}

// FetchInput GETs the input for coord with the cookie "session=<credential>"
// and copies the response body to w unmodified.
//
// The status code is not inspected: error pages are written to w like any
// other body and do not produce an error. Only failures to perform the
// request or to read the body are returned, as E_FETCH_FAILED.
func (c *Client) FetchInput(ctx context.Context, coord Coordinate, credential string, w io.Writer) (Result, error) {
	result := Result{URL: c.InputURL(coord)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, result.URL, nil)
	if err != nil {
		return result, errors.Wrap(errors.EFetchFailed, "invalid input url "+result.URL+": "+err.Error(), err)
	}
	c.setHeaders(req, credential)

	c.logger.Debug("requesting puzzle input", zap.String("url", result.URL))

	resp, err := c.client.Do(req)
	if err != nil {
		return result, errors.Wrap(errors.EFetchFailed, "request failed: "+err.Error(), err)
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Bytes, err = io.Copy(w, resp.Body)
	if err != nil {
		return result, errors.Wrap(errors.EFetchFailed, "copying response body: "+err.Error(), err)
	}

	c.logger.Debug("puzzle input received",
		zap.Int("status", result.StatusCode),
		zap.Int64("bytes", result.Bytes))

	return result, nil
}

// setHeaders sets the session cookie. User-Agent and Accept-Encoding are
// set explicitly so net/http adds neither its default agent nor gzip.
func (c *Client) setHeaders(req *http.Request, credential string) {
	req.Header.Set("Cookie", "session="+credential)
	req.Header.Set("User-Agent", UserAgent())
	req.Header.Set("Accept-Encoding", "identity")
}

// UserAgent is the User-Agent sent with every request.
func UserAgent() string {
	return "aocday/" + version.Version
}
