package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/hr-assistant/internal/domain/assistant"
	"github.com/yanqian/hr-assistant/internal/domain/faq"
	apperrors "github.com/yanqian/hr-assistant/pkg/errors"
)

// FAQIndex exposes the read side of the FAQ matcher to the transport.
type FAQIndex interface {
	Match(query string) faq.Match
	Entries() []faq.Entry
	Len() int
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	assistantSvc assistant.Service
	faqIndex     FAQIndex
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(assistantSvc assistant.Service, faqIndex FAQIndex, logger *slog.Logger) *Handler {
	return &Handler{
		assistantSvc: assistantSvc,
		faqIndex:     faqIndex,
		logger:       logger.With("component", "http.handler"),
	}
}

type matchRequest struct {
	Question string `json:"question"`
}

// Chat runs one turn of the assistant pipeline.
func (h *Handler) Chat(c *gin.Context) {
	var req assistant.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.assistantSvc.Answer(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "chat_failed"
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MatchFAQ returns the raw matcher outcome for a question.
func (h *Handler) MatchFAQ(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.faqIndex.Match(req.Question))
}

// ListFAQ returns the indexed entries in corpus order.
func (h *Handler) ListFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.faqIndex.Entries()})
}

// TrendingFAQ returns the most common queries.
func (h *Handler) TrendingFAQ(c *gin.Context) {
	items, err := h.assistantSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "trending_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// Health reports liveness and the size of the loaded corpus.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "faqEntries": h.faqIndex.Len()})
}

// Demo renders the chat page.
func (h *Handler) Demo(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "HR Assistant"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
