package espn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	httpClient *http.Client
	Config     config.ESPNAPI
}

func NewClient(cfg config.ESPNAPI) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg.ESPNS2 = NormalizeS2(cfg.ESPNS2)
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		Config:     cfg,
	}
}

// HTTPError is returned for any non-2xx platform response.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if msgs := e.Messages(); len(msgs) > 0 {
		return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Messages returns the platform's error messages, or nil when the body
// does not carry a messages list.
func (e *HTTPError) Messages() []string {
	var body struct {
		Messages []string `json:"messages"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return nil
	}
	return body.Messages
}

// NormalizeS2 percent-decodes an espn_s2 cookie copied from a browser.
// Values without an escape sequence are returned unchanged, so applying
// it twice yields the same result.
func NormalizeS2(s2 string) string {
	if !strings.Contains(s2, "%") {
		return s2
	}
	decoded, err := url.PathUnescape(s2)
	if err != nil {
		return s2
	}
	return decoded
}

// Get issues a read against the reads host. Comma separated param values
// are sent as repeated query keys.
func (c *Client) Get(ctx context.Context, endpoint string, params, headers map[string]string, result interface{}) error {
	u := c.Config.ReadsURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		for _, v := range strings.Split(value, ",") {
			q.Add(key, strings.TrimSpace(v))
		}
	}
	req.URL.RawQuery = q.Encode()

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	_, err = c.do(req, result)
	return err
}

// Post sends a JSON body to the writes host and returns the raw response
// body alongside the decoded result.
func (c *Client) Post(ctx context.Context, endpoint string, body, result interface{}) ([]byte, error) {
	u := c.Config.WritesURL + endpoint

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshalling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result interface{}) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	c.setCookies(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, &HTTPError{StatusCode: resp.StatusCode, Body: raw}
	}

	if result == nil || len(bytes.TrimSpace(raw)) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return raw, &DecodeError{Err: err}
	}

	return raw, nil
}

// DecodeError wraps a response body that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Private leagues need both cookies; public leagues are read without them.
func (c *Client) setCookies(req *http.Request) {
	if !c.Config.HasAuth() {
		return
	}
	cookie := fmt.Sprintf("SWID=%s; espn_s2=%s", c.Config.SWID, c.Config.ESPNS2)
	req.Header.Set("Cookie", cookie)
}
