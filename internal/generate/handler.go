package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/llm"
	"jobsearch-backend/internal/prompt"
	"jobsearch-backend/internal/session"
	"jobsearch-backend/internal/shared/server/middleware"
	"jobsearch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation, artifact and chat routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.GET("/artifacts", h.listArtifacts)
	rg.GET("/artifacts/:id", h.getArtifact)
	rg.POST("/artifacts/compare", h.compareArtifacts)
	rg.POST("/artifacts/:id/save", h.saveArtifact)
	rg.POST("/chat", h.chat)
	rg.GET("/chat", h.chatHistory)
	rg.DELETE("/chat", h.clearChat)
}

type generateRequest struct {
	Feature        string `json:"feature"`
	JobDescription string `json:"jobDescription"`
	Question       string `json:"question"`
}

func (h *Handler) generate(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("feature", req.Feature)

	artifact, err := h.Svc.Generate(c.Request.Context(), sessionID, req.Feature, req.JobDescription, req.Question)
	if err != nil {
		h.generationError(c, err)
		return
	}

	c.Set("artifactId", artifact.ID)
	respond.Created(c, toArtifactDetailResponse(artifact))
}

func (h *Handler) listArtifacts(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	artifacts, err := h.Svc.Artifacts(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list artifacts", nil)
		return
	}

	out := make([]ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, toArtifactResponse(a))
	}
	respond.OK(c, gin.H{"artifacts": out})
}

func (h *Handler) getArtifact(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	artifactID := c.Param("id")
	c.Set("artifactId", artifactID)

	artifact, err := h.Svc.Artifact(c.Request.Context(), sessionID, artifactID)
	if err != nil {
		h.artifactError(c, err)
		return
	}

	respond.OK(c, toArtifactDetailResponse(artifact))
}

type compareRequest struct {
	IDs []string `json:"ids"`
}

func (h *Handler) compareArtifacts(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.IDs) != 2 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "exactly two artifact ids are required", nil)
		return
	}

	left, right, err := h.Svc.Compare(c.Request.Context(), sessionID, req.IDs[0], req.IDs[1])
	if err != nil {
		h.artifactError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"left":  toArtifactDetailResponse(left),
		"right": toArtifactDetailResponse(right),
	})
}

type saveRequest struct {
	FileName string `json:"fileName"`
}

func (h *Handler) saveArtifact(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	artifactID := c.Param("id")
	c.Set("artifactId", artifactID)

	var req saveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	storageKey, err := h.Svc.SaveArtifact(c.Request.Context(), sessionID, artifactID, req.FileName)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrArtifactNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save artifact", nil)
		}
		return
	}

	respond.Created(c, gin.H{"storageKey": storageKey})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	c.Set("feature", prompt.FeatureChat.String())

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	reply, err := h.Svc.Chat(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		h.generationError(c, err)
		return
	}

	respond.OK(c, toChatTurnResponse(reply))
}

func (h *Handler) chatHistory(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	history, err := h.Svc.History(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch chat history", nil)
		return
	}

	out := make([]ChatTurnResponse, 0, len(history))
	for _, t := range history {
		out = append(out, toChatTurnResponse(t))
	}
	respond.OK(c, gin.H{"history": out})
}

func (h *Handler) clearChat(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	if err := h.Svc.ClearHistory(c.Request.Context(), sessionID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear chat history", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// generationError maps pipeline failures onto the response envelope.
func (h *Handler) generationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, prompt.ErrUnknownFeature),
		errors.Is(err, prompt.ErrMissingJobDescription),
		errors.Is(err, prompt.ErrMissingQuestion),
		errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNoResume):
		respond.Error(c, http.StatusConflict, "no_resume", "upload a resume before generating", nil)
	case errors.Is(err, llm.ErrAuth):
		respond.Error(c, http.StatusBadGateway, "auth_error", "the model provider rejected the configured credentials", nil)
	case errors.Is(err, llm.ErrTransient):
		respond.Error(c, http.StatusBadGateway, "service_error", "the model provider is unavailable; retry the request", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "generation failed", nil)
	}
}

func (h *Handler) artifactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrArtifactNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch artifact", nil)
	}
}
