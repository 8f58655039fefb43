package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"portfolio-ai-backend/internal/gemini"
	"portfolio-ai-backend/internal/models"
	"portfolio-ai-backend/internal/prompts"
)

type Handler struct {
	gemini gemini.Provider
}

func NewHandler(provider gemini.Provider) *Handler {
	return &Handler{gemini: provider}
}

// Index renders the portfolio assistant page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// GenerateBio handles POST /api/bio. An absent or malformed body counts
// as empty input, which is the one client error this service reports
// with a non-200 status.
func (h *Handler) GenerateBio(c *gin.Context) {
	var req models.BioRequest
	_ = c.ShouldBindJSON(&req)

	systemPrompt, userQuery, err := prompts.Bio(req.Keywords)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No keywords provided."})
		return
	}

	ctx := context.Background()
	outcome := h.gemini.Generate(ctx, userQuery, systemPrompt)
	if outcome.Kind != gemini.OutcomeSuccess {
		log.WithField("request_id", c.GetString(requestIDKey)).
			Warn("bio generation did not succeed, returning error sentence")
	}
	c.JSON(http.StatusOK, models.BioResponse{Text: outcome.Flatten()})
}

// GenerateProject handles POST /api/project. A missing role falls back
// to the default, so this route always answers 200. The generated HTML
// is passed through to the browser untouched.
func (h *Handler) GenerateProject(c *gin.Context) {
	var req models.ProjectRequest
	_ = c.ShouldBindJSON(&req)

	systemPrompt, userQuery := prompts.Project(req.Role)

	ctx := context.Background()
	outcome := h.gemini.Generate(ctx, userQuery, systemPrompt)
	if outcome.Kind != gemini.OutcomeSuccess {
		log.WithField("request_id", c.GetString(requestIDKey)).
			Warn("project generation did not succeed, returning error sentence")
	}
	c.JSON(http.StatusOK, models.ProjectResponse{HTML: outcome.Flatten()})
}
