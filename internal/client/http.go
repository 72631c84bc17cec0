package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"lunaphase/internal/domain"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	URL     string
	Status  string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lunaserver %s %s: %s: %s", e.Method, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("lunaserver %s %s: %s", e.Method, e.URL, e.Status)
}

// HTTP is a lunaserver client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil client means
// http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

var _ domain.PhaseClient = (*HTTP)(nil)

// Phase fetches the report for date at timeOfDay.
func (c *HTTP) Phase(ctx context.Context, date civil.Date, timeOfDay civil.Time) (domain.Report, error) {
	q := url.Values{}
	q.Set("date", date.String())
	q.Set("time", timeOfDay.String())
	return c.phase(ctx, q)
}

// PhaseAt fetches the report for date at the server's default time.
func (c *HTTP) PhaseAt(ctx context.Context, date civil.Date) (domain.Report, error) {
	q := url.Values{}
	q.Set("date", date.String())
	return c.phase(ctx, q)
}

func (c *HTTP) phase(ctx context.Context, q url.Values) (domain.Report, error) {
	var out domain.Report
	if err := c.getJSON(ctx, "/api/phase?"+q.Encode(), &out); err != nil {
		return domain.Report{}, err
	}
	if strings.HasPrefix(out.Image, "/") {
		out.Image = c.Base + out.Image
	}
	return out, nil
}

// Calendar fetches days snapshots starting at from.
func (c *HTTP) Calendar(ctx context.Context, from civil.Date, days int) ([]domain.Snapshot, error) {
	q := url.Values{}
	q.Set("from", from.String())
	q.Set("days", strconv.Itoa(days))

	var out []domain.Snapshot
	if err := c.getJSON(ctx, "/api/calendar?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health returns nil when the server answers /healthz with 2xx.
func (c *HTTP) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// do sends the request and turns non-2xx responses into *StatusError. The
// caller closes the body of a successful response.
func (c *HTTP) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		se := &StatusError{
			Method: method,
			URL:    req.URL.String(),
			Status: resp.Status,
			Code:   resp.StatusCode,
		}
		var body struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body) == nil {
			se.Message = body.Error
		}
		return nil, se
	}
	return resp, nil
}
