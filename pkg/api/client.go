// ABOUTME: Typed client for the agent service: chat endpoints, directory listing, report, downloads
// ABOUTME: Maps transport errors to NetworkError and bad statuses/payloads to RejectionError

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"github.com/mauromedda/sda-go/internal/log"
	"github.com/mauromedda/sda-go/pkg/api/internal/httputil"
)

// maxDetailBytes bounds how much of a rejected body is kept for diagnostics.
const maxDetailBytes = 512

// Options configures a Client.
type Options struct {
	// Timeout applies to whole requests; zero means no client-side timeout.
	Timeout   time.Duration
	Endpoints Endpoints
	Headers   map[string]string
}

// Client talks to one agent service instance.
type Client struct {
	http      *httputil.Client
	endpoints Endpoints
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	return &Client{
		http:      httputil.NewClient(baseURL, opts.Headers, opts.Timeout),
		endpoints: opts.Endpoints.withDefaults(),
	}
}

// BaseURL returns the service root this client targets.
func (c *Client) BaseURL() string { return c.http.BaseURL() }

// StartConversational opens a conversational session and returns its greeting.
func (c *Client) StartConversational(ctx context.Context) (string, error) {
	return c.chat(ctx, "start-conversational", c.endpoints.StartConversational, nil)
}

// ChatConversational sends one conversational turn.
func (c *Client) ChatConversational(ctx context.Context, message string) (string, error) {
	return c.chat(ctx, "chat-conversational", c.endpoints.ChatConversational, &ChatRequest{Message: message})
}

// StartFullPrompt sends the one-shot full prompt.
func (c *Client) StartFullPrompt(ctx context.Context, message string) (string, error) {
	return c.chat(ctx, "start-full-prompt", c.endpoints.StartFullPrompt, &ChatRequest{Message: message})
}

// ContinueFullPrompt sends a follow-up message to a full-prompt run.
func (c *Client) ContinueFullPrompt(ctx context.Context, message string) (string, error) {
	return c.chat(ctx, "continue-full-prompt", c.endpoints.ContinueFullPrompt, &ChatRequest{Message: message})
}

func (c *Client) chat(ctx context.Context, op, path string, req *ChatRequest) (string, error) {
	var body io.Reader
	if req != nil {
		data, err := easyjson.Marshal(req)
		if err != nil {
			return "", fmt.Errorf("%s: encoding request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	var reply ChatReply
	if err := c.call(ctx, op, http.MethodPost, path, nil, body, &reply); err != nil {
		return "", err
	}
	if !reply.OK {
		return "", &RejectionError{Op: op, StatusCode: http.StatusOK, Detail: "ok flag missing or false"}
	}
	return reply.Reply, nil
}

// ListDirectory lists path under the runs directory. The returned Cwd is the
// canonical path the backend listed.
func (c *Client) ListDirectory(ctx context.Context, path string) (Listing, error) {
	const op = "list-directory"
	var listing Listing
	if err := c.call(ctx, op, http.MethodGet, c.endpoints.ListDirectory, url.Values{"path": {path}}, nil, &listing); err != nil {
		return Listing{}, err
	}
	if !listing.OK {
		return Listing{}, &RejectionError{Op: op, StatusCode: http.StatusOK, Detail: "ok flag missing or false"}
	}
	return listing, nil
}

// ValidationReport returns the markdown validation report of the active run.
// An empty string means no report exists yet.
func (c *Client) ValidationReport(ctx context.Context) (string, error) {
	var report Report
	if err := c.call(ctx, "validation-report", http.MethodGet, c.endpoints.ValidationReport, nil, nil, &report); err != nil {
		return "", err
	}
	return report.MD, nil
}

// RunFiles lists the CSV files of the active run.
func (c *Client) RunFiles(ctx context.Context) (RunFiles, error) {
	const op = "run-files"
	var files RunFiles
	if err := c.call(ctx, op, http.MethodGet, c.endpoints.RunFiles, nil, nil, &files); err != nil {
		return RunFiles{}, err
	}
	if !files.OK {
		return RunFiles{}, &RejectionError{Op: op, StatusCode: http.StatusOK, Detail: "ok flag missing or false"}
	}
	return files, nil
}

// Health probes the backend liveness endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.call(ctx, "health", http.MethodGet, c.endpoints.Health, nil, nil, &h); err != nil {
		return Health{}, err
	}
	if h.Status != "ok" {
		return h, &RejectionError{Op: "health", StatusCode: http.StatusOK, Detail: fmt.Sprintf("status %q", h.Status)}
	}
	return h, nil
}

// Download is an open file download. The caller must close Body.
type Download struct {
	Filename string
	Size     int64
	Body     io.ReadCloser
}

// Download starts downloading the file at path.
func (c *Client) Download(ctx context.Context, path string) (*Download, error) {
	const op = "download-file"
	resp, err := c.http.Do(ctx, http.MethodGet, c.endpoints.DownloadFile, url.Values{"path": {path}}, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, rejection(op, resp)
	}
	return &Download{
		Filename: attachmentName(resp.Header.Get("Content-Disposition"), path),
		Size:     resp.ContentLength,
		Body:     resp.Body,
	}, nil
}

// call performs a request and decodes a JSON response into out.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body io.Reader, out easyjson.Unmarshaler) error {
	log.Debug("api: %s %s %s", op, method, path)

	resp, err := c.http.Do(ctx, method, path, query, body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return rejection(op, resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("reading body: %w", err)}
	}
	if err := easyjson.Unmarshal(data, out); err != nil {
		return &RejectionError{Op: op, StatusCode: resp.StatusCode, Detail: "malformed payload: " + err.Error()}
	}
	return nil
}

// rejection builds a RejectionError from a non-2xx response.
func rejection(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBytes))
	detail := strings.TrimSpace(string(raw))
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		detail = htmlText(detail)
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	log.Debug("api: %s rejected: %d %s", op, resp.StatusCode, detail)
	return &RejectionError{Op: op, StatusCode: resp.StatusCode, Detail: detail}
}

// attachmentName extracts the filename from a Content-Disposition header,
// falling back to the last segment of the requested path.
func attachmentName(disposition, requested string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	if i := strings.LastIndex(requested, "/"); i >= 0 {
		return requested[i+1:]
	}
	return requested
}
