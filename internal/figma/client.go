package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// UpstreamResponse carries the status and raw body of one upstream
// call. A non-2xx status is data, not a Go error, so handlers can pass
// the upstream payload through verbatim.
type UpstreamResponse struct {
	OK     bool
	Status int
	Body   []byte
}

// Decode unmarshals the response body.
func (r *UpstreamResponse) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// UpstreamError surfaces a non-2xx upstream status where a stage is
// fatal to the whole request. The body is kept so the caller can
// forward 401/403/429 payloads without reinterpretation.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("figma upstream status %d", e.Status)
}

// Client issues authenticated GET requests against the Figma REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

// NewClient builds a client. An empty token is allowed (requests will
// be rejected upstream); it is warned about once here rather than per
// request, to keep local development friction-free.
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if token == "" {
		logger.Warn("figma token not configured, upstream requests will fail with 401/403")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		logger:     logger,
	}
}

// GetJSON issues a GET for path relative to the API base. It returns
// an error only for transport-level failures.
func (c *Client) GetJSON(ctx context.Context, path string) (*UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("figma get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read figma response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("figma upstream non-2xx",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
	}
	return &UpstreamResponse{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}

// Projects lists a team's projects.
func (c *Client) Projects(ctx context.Context, teamID string) (*UpstreamResponse, error) {
	return c.GetJSON(ctx, "/teams/"+url.PathEscape(teamID)+"/projects")
}

// ProjectFiles lists the files of one project.
func (c *Client) ProjectFiles(ctx context.Context, projectID string) (*UpstreamResponse, error) {
	return c.GetJSON(ctx, "/projects/"+url.PathEscape(projectID)+"/files")
}

// File fetches a file's full document tree.
func (c *Client) File(ctx context.Context, fileKey string) (*UpstreamResponse, error) {
	return c.GetJSON(ctx, "/files/"+url.PathEscape(fileKey))
}

// Images requests rendered image URLs for the given node ids.
func (c *Client) Images(ctx context.Context, fileKey string, ids []string, format string, scale float64) (*UpstreamResponse, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("format", format)
	q.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))
	return c.GetJSON(ctx, "/images/"+url.PathEscape(fileKey)+"?"+q.Encode())
}
