package hms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"hospital-ipd-engine/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client talks to the remote hospital-management store. It implements every
// gateway port the engine consumes; nothing in the engine touches the wire
// directly.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.HMSConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// UpstreamError carries the store's own message so callers can surface it
// verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("hospital store request failed with status %d", e.StatusCode)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("HMS %s %s failed: %+v", req.Method, req.URL.Path, err)
		return nil, fmt.Errorf("hospital store unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hospital store response read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upErr := &UpstreamError{StatusCode: resp.StatusCode, Message: upstreamMessage(raw)}
		c.log.Warnf("HMS %s %s returned %d: %s", req.Method, req.URL.Path, resp.StatusCode, upErr.Error())
		return nil, upErr
	}
	return raw, nil
}

// upstreamMessage digs the store's error text out of whichever field it used
// this time.
func upstreamMessage(raw []byte) string {
	var m payload
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return stringField(m, "Message", "Error", "ErrorMessage", "Detail")
}

// unwrapObject decodes a response body that is either a bare object or an
// object wrapped under a data/result envelope.
func unwrapObject(raw json.RawMessage) (payload, error) {
	var m payload
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("hospital store response decode: %w", err)
	}
	for _, key := range []string{"data", "Data", "result", "Result"} {
		if inner, ok := m[key].(map[string]interface{}); ok {
			return payload(inner), nil
		}
	}
	return m, nil
}

// unwrapList decodes a response body that is either a bare array or an array
// wrapped under a data/result envelope.
func unwrapList(raw json.RawMessage) ([]payload, error) {
	var list []payload
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("hospital store response decode: %w", err)
	}
	for _, key := range []string{"data", "Data", "result", "Result"} {
		if inner, ok := m[key]; ok {
			if err := json.Unmarshal(inner, &list); err == nil {
				return list, nil
			}
		}
	}
	return nil, fmt.Errorf("hospital store response decode: expected a list")
}
