package reviews

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/obs"
)

// maxBodyBytes caps how much of the review payload is read.
const maxBodyBytes = 4 << 20

// Client fetches review data from a fixed HTTP JSON endpoint.
type Client struct {
	URL    string
	Client *http.Client
}

// NewClient builds a Client for url. A zero timeout leaves requests bounded
// only by the caller's context.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a single GET and decodes the body. Any failure (transport
// error, non-2xx status, unreadable body, body that is not a JSON array) is
// logged as a warning and reported as nil. Fetch never retries.
func (c *Client) Fetch(ctx context.Context) []model.ReviewEntry {
	ctx, span := obs.Tracer().Start(ctx, "reviews.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("reviews.url", c.URL))

	fail := func(msg string, err error, attrs ...any) []model.ReviewEntry {
		if err != nil {
			span.RecordError(err)
			attrs = append(attrs, "error", err)
		}
		span.SetStatus(codes.Error, msg)
		obs.Logger.Warn(msg, append([]any{"url", c.URL}, attrs...)...)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return fail("review_fetch_failed", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return fail("review_fetch_failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fail("review_fetch_failed", fmt.Errorf("unexpected status %d", resp.StatusCode), "status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fail("review_fetch_failed", err, "status", resp.StatusCode)
	}
	entries, ok := Decode(body)
	if !ok {
		return fail("review_data_invalid", nil, "status", resp.StatusCode, "bytes", len(body))
	}
	span.SetAttributes(attribute.Int("reviews.count", len(entries)))
	obs.Logger.Info("review_fetch_complete", "url", c.URL, "status", resp.StatusCode, "entries", len(entries))
	return entries
}
