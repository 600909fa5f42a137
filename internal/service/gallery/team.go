package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"figmaproxy/internal/figma"
	"figmaproxy/internal/worker"

	"go.uber.org/zap"
)

const (
	teamCachePrefix = "figma:team:"
	figmaFileBase   = "https://www.figma.com/file/"

	// previews render at a fixed format and scale
	previewFormat = "png"
	previewScale  = 2
)

// TeamFiles aggregates one team's gallery: projects, files per
// project, and a rendered preview per file. The result is raw JSON so
// the cached and freshly computed paths serve identical bytes. Only
// the project listing is fatal; everything downstream degrades
// per-unit.
func (s *Service) TeamFiles(ctx context.Context, teamID string) (json.RawMessage, bool, error) {
	key := teamCachePrefix + teamID
	if raw, ok := s.store.Get(ctx, key); ok {
		return raw, true, nil
	}

	resp, err := s.client.Projects(ctx, teamID)
	if err != nil {
		return nil, false, err
	}
	if !resp.OK {
		return nil, false, &figma.UpstreamError{Status: resp.Status, Body: resp.Body}
	}
	var projects figma.ProjectsResponse
	if err := resp.Decode(&projects); err != nil {
		return nil, false, fmt.Errorf("decode projects: %w", err)
	}

	entries := s.listTeamFiles(ctx, projects.Projects)
	enriched := worker.Map(entries, s.opts.Concurrency, func(e figma.TeamFileEntry) figma.TeamFileEntry {
		return s.enrich(ctx, e)
	})

	raw, err := json.Marshal(enriched)
	if err != nil {
		return nil, false, fmt.Errorf("marshal gallery entries: %w", err)
	}
	s.store.Put(ctx, key, raw, s.opts.TeamTTL)
	return raw, false, nil
}

type projectFiles struct {
	project figma.Project
	files   []figma.File
}

// listTeamFiles fans out one file-listing call per project, all in
// parallel, and flattens the results into bare gallery entries. A
// failing project degrades to an empty file list instead of aborting
// the rest.
func (s *Service) listTeamFiles(ctx context.Context, projects []figma.Project) []figma.TeamFileEntry {
	listings := worker.Map(projects, len(projects), func(p figma.Project) projectFiles {
		resp, err := s.client.ProjectFiles(ctx, p.ID)
		if err != nil {
			s.logger.Warn("project file listing failed",
				zap.String("project", p.ID), zap.Error(err))
			return projectFiles{project: p}
		}
		if !resp.OK {
			s.logger.Warn("project file listing rejected",
				zap.String("project", p.ID), zap.Int("status", resp.Status))
			return projectFiles{project: p}
		}
		var files figma.FilesResponse
		if err := resp.Decode(&files); err != nil {
			return projectFiles{project: p}
		}
		return projectFiles{project: p, files: files.Files}
	})

	entries := make([]figma.TeamFileEntry, 0)
	for _, pf := range listings {
		for _, f := range pf.files {
			entries = append(entries, figma.TeamFileEntry{
				ProjectID:   pf.project.ID,
				ProjectName: pf.project.Name,
				FileKey:     f.Key,
				FileName:    f.Name,
				FigmaURL:    figmaFileBase + f.Key + "/" + url.PathEscape(f.Name),
			})
		}
	}
	return entries
}

// enrich attaches a preview image URL to one entry: fetch the file
// document, find the first visible frame, render that node. Any
// failure stays inside the entry.
func (s *Service) enrich(ctx context.Context, e figma.TeamFileEntry) figma.TeamFileEntry {
	resp, err := s.client.File(ctx, e.FileKey)
	if err != nil {
		e.Error = err.Error()
		return e
	}
	if !resp.OK {
		e.Error = upstreamMessage(resp.Body, "failed to fetch file")
		return e
	}
	var file figma.FileResponse
	if err := resp.Decode(&file); err != nil {
		e.Error = err.Error()
		return e
	}

	frame := figma.FindFirstFrame(file.Document)
	if frame == nil {
		e.Note = "no frame found"
		return e
	}
	e.FrameID = frame.ID

	imgResp, err := s.client.Images(ctx, e.FileKey, []string{frame.ID}, previewFormat, previewScale)
	if err != nil {
		e.Error = err.Error()
		return e
	}
	if !imgResp.OK {
		e.Error = upstreamMessage(imgResp.Body, "failed to fetch image")
		return e
	}
	var images figma.ImagesResponse
	if err := imgResp.Decode(&images); err != nil {
		e.Error = err.Error()
		return e
	}
	e.PreviewURL = images.Images[frame.ID]
	return e
}

func upstreamMessage(body []byte, fallback string) string {
	if len(body) == 0 {
		return fallback
	}
	return string(body)
}
