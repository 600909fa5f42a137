package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"figmaproxy/internal/figma"
	"figmaproxy/internal/service/gallery"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP routes to the gallery aggregation service.
type Handler struct {
	gallery *gallery.Service
	logger  *zap.Logger
}

// NewHandler constructs a Handler instance.
func NewHandler(service *gallery.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		gallery: service,
		logger:  logger,
	}
}

// RegisterRoutes attaches all HTTP routes to the router. Paths mirror
// the frontend's expectations.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/projects", h.listProjects)

	fig := api.Group("/figma")
	fig.GET("/file/:fileKey", h.fileFrames)
	fig.POST("/images", h.renderImages)
	fig.GET("/team/:teamId", h.teamFiles)

	// keyless variants so a missing path param is a 400, not a 404
	fig.GET("/file", h.fileFrames)
	fig.GET("/team", h.teamFiles)
}

func (h *Handler) fileFrames(c *gin.Context) {
	fileKey := c.Param("fileKey")
	if fileKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "fileKey required"})
		return
	}
	frames, err := h.gallery.FileFrames(c.Request.Context(), fileKey)
	if err != nil {
		h.writeError(c, "file frames", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "frames": frames})
}

type imagesRequest struct {
	FileKey string   `json:"fileKey"`
	IDs     []string `json:"ids"`
	Format  string   `json:"format"`
	Scale   float64  `json:"scale"`
}

func (h *Handler) renderImages(c *gin.Context) {
	var req imagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}
	if req.FileKey == "" || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "fileKey and ids[] are required"})
		return
	}
	images, err := h.gallery.Images(c.Request.Context(), req.FileKey, req.IDs, req.Format, req.Scale)
	if err != nil {
		h.writeError(c, "render images", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "images": images})
}

func (h *Handler) teamFiles(c *gin.Context) {
	teamID := c.Param("teamId")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "teamId required"})
		return
	}
	data, cached, err := h.gallery.TeamFiles(c.Request.Context(), teamID)
	if err != nil {
		h.writeError(c, "team gallery", err)
		return
	}
	resp := gin.H{"ok": true, "data": data}
	if cached {
		resp["cached"] = true
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listProjects(c *gin.Context) {
	data, _, err := h.gallery.ProjectFiles(c.Request.Context())
	if err != nil {
		if errors.Is(err, gallery.ErrTokenNotConfigured) || errors.Is(err, gallery.ErrProjectNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("fetch projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// writeError maps the error taxonomy onto HTTP responses: upstream
// failures pass the upstream status and body through, everything else
// is a 500 with the error message.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var upstream *figma.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.Status, gin.H{
			"ok":     false,
			"status": upstream.Status,
			"error":  upstreamPayload(upstream.Body),
		})
		return
	}
	h.logger.Error(op+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// upstreamPayload keeps JSON error bodies structured and falls back to
// plain text for anything else.
func upstreamPayload(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
