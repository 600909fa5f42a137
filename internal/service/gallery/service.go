// Package gallery aggregates Figma REST API results for the portfolio
// frontend: team galleries with frame previews, per-file frame
// listings and batch image resolution.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"figmaproxy/internal/cache"
	"figmaproxy/internal/figma"

	"go.uber.org/zap"
)

var (
	ErrTokenNotConfigured   = errors.New("figma token not configured")
	ErrProjectNotConfigured = errors.New("figma project id not configured")
)

// Options configures the aggregation service.
type Options struct {
	TeamTTL     time.Duration
	ProjectTTL  time.Duration
	Concurrency int
	ProjectID   string
	HasToken    bool
}

// Service runs the aggregation pipelines on top of the upstream client
// and the result cache.
type Service struct {
	client *figma.Client
	store  cache.Store
	logger *zap.Logger
	opts   Options
}

func NewService(client *figma.Client, store cache.Store, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TeamTTL <= 0 {
		opts.TeamTTL = 5 * time.Minute
	}
	if opts.ProjectTTL <= 0 {
		opts.ProjectTTL = time.Hour
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Service{
		client: client,
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

// FileFrames lists every frame-like node of one file, in traversal
// order. A non-2xx upstream response is returned as *figma.UpstreamError
// for status passthrough.
func (s *Service) FileFrames(ctx context.Context, fileKey string) ([]figma.FrameSummary, error) {
	resp, err := s.client.File(ctx, fileKey)
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &figma.UpstreamError{Status: resp.Status, Body: resp.Body}
	}
	var file figma.FileResponse
	if err := resp.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode file document: %w", err)
	}
	return figma.CollectFrames(file.Document), nil
}

// Images batch-resolves rendered image URLs for a set of node ids and
// returns the id to URL mapping verbatim.
func (s *Service) Images(ctx context.Context, fileKey string, ids []string, format string, scale float64) (map[string]string, error) {
	if format == "" {
		format = "png"
	}
	if scale <= 0 {
		scale = 1
	}
	resp, err := s.client.Images(ctx, fileKey, ids, format, scale)
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &figma.UpstreamError{Status: resp.Status, Body: resp.Body}
	}
	var images figma.ImagesResponse
	if err := resp.Decode(&images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	return images.Images, nil
}
