// Package api is the typed facade over the backend's HTTP surface. Every
// remote operation gets one method; all of them go through do(), which owns
// path building, token attachment and envelope decoding. Swapping the
// transport for the mock router's is how the whole module runs offline.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type Options struct {
	// BaseURL includes the API prefix, e.g. http://127.0.0.1:5000/api/v1.
	BaseURL string
	Session *store.Session
	// Transport overrides the HTTP transport. The mock router's Transport()
	// goes here in mock mode.
	Transport http.RoundTripper
	// MockMode suppresses the 401 session teardown: the mock backend shares
	// the caller's session and a stray 401 must not log the user out twice.
	MockMode bool
	// OnUnauthorized runs after a real-mode 401 clears the session. The UI
	// layer hooks its redirect here.
	OnUnauthorized func()
	Timeout        time.Duration
}

type Client struct {
	baseURL        string
	http           *http.Client
	session        *store.Session
	mockMode       bool
	onUnauthorized func()
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           &http.Client{Transport: opts.Transport, Timeout: timeout},
		session:        opts.Session,
		mockMode:       opts.MockMode,
		onUnauthorized: opts.OnUnauthorized,
	}
}

// do sends one API request and returns the decoded envelope. Error envelopes
// come back as *apperror.AppError carrying the backend's message and status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*response.Envelope, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, reader, contentType)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*response.Envelope, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil {
		if token, ok := c.session.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	env, err := response.Decode(raw)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !c.mockMode {
		// The stored session is no longer valid; drop it before surfacing
		// the error so the next request starts clean.
		if c.session != nil {
			c.session.Clear()
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if env.Status != response.StatusSuccess || resp.StatusCode >= http.StatusBadRequest {
		message := env.Message
		if message == "" {
			message = "Bir hata oluştu"
		}
		return env, apperror.New(resp.StatusCode, message, nil)
	}

	return env, nil
}

// upload sends a multipart form with the given files and fields.
func (c *Client) upload(ctx context.Context, path string, files map[string][]Upload, fields map[string]string) (*response.Envelope, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, uploads := range files {
		for _, u := range uploads {
			part, err := w.CreateFormFile(field, u.FileName)
			if err != nil {
				return nil, fmt.Errorf("failed to build upload form: %w", err)
			}
			if _, err := io.Copy(part, u.Content); err != nil {
				return nil, fmt.Errorf("failed to read upload %q: %w", u.FileName, err)
			}
		}
	}
	for field, value := range fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	return c.send(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType())
}

// Upload is one file destined for a multipart request.
type Upload struct {
	FileName string
	Content  io.Reader
}

// pageQuery seeds a query with pagination values, omitting unset ones.
func pageQuery(page, perPage int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	return q
}

// setIf adds a query parameter only when the value is non-empty, so filters
// the caller left blank never reach the wire.
func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
