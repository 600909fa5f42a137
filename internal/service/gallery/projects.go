package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"figmaproxy/internal/figma"
)

const projectCachePrefix = "figma:projects:"

// ProjectFiles serves the site-wide projects listing: the files of the
// configured portfolio project, newest first. Unlike the team routes,
// missing configuration is a hard error here.
func (s *Service) ProjectFiles(ctx context.Context) (json.RawMessage, bool, error) {
	if !s.opts.HasToken {
		return nil, false, ErrTokenNotConfigured
	}
	if s.opts.ProjectID == "" {
		return nil, false, ErrProjectNotConfigured
	}

	key := projectCachePrefix + s.opts.ProjectID
	if raw, ok := s.store.Get(ctx, key); ok {
		return raw, true, nil
	}

	resp, err := s.client.ProjectFiles(ctx, s.opts.ProjectID)
	if err != nil {
		return nil, false, err
	}
	if !resp.OK {
		return nil, false, fmt.Errorf("figma api responded with status %d", resp.Status)
	}
	var files figma.FilesResponse
	if err := resp.Decode(&files); err != nil {
		return nil, false, fmt.Errorf("decode project files: %w", err)
	}

	sorted := files.Files
	if sorted == nil {
		sorted = make([]figma.File, 0)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return updatedAfter(sorted[i], sorted[j])
	})

	raw, err := json.Marshal(sorted)
	if err != nil {
		return nil, false, fmt.Errorf("marshal project files: %w", err)
	}
	s.store.Put(ctx, key, raw, s.opts.ProjectTTL)
	return raw, false, nil
}

// updatedAfter orders files most recently updated first, falling back
// to a lexical compare when a timestamp does not parse.
func updatedAfter(a, b figma.File) bool {
	ta, errA := time.Parse(time.RFC3339, a.UpdatedAt)
	tb, errB := time.Parse(time.RFC3339, b.UpdatedAt)
	if errA == nil && errB == nil {
		return ta.After(tb)
	}
	return a.UpdatedAt > b.UpdatedAt
}
