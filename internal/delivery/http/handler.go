package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hairdiag/backend/internal/domain"
	"go.uber.org/zap"
)

const (
	msgMissingFields    = "Please fill in all required fields."
	msgCatalogUnreached = "We could not load the product catalog right now. Please try again in a few minutes."
	msgUnexpected       = "Something went wrong while preparing your recommendations."
)

// Recommender computes recommendations for a profile
type Recommender interface {
	Recommend(ctx context.Context, profile domain.Profile) (*domain.Recommendation, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender Recommender
	logger      *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender Recommender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		recommender: recommender,
		logger:      logger,
	}
}

// Submission is a questionnaire submission, posted as a form or as JSON
type Submission struct {
	Contact domain.Contact `json:"contact"`
	Profile domain.Profile `json:"profile"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "hairdiag-backend",
		"version": "1.0.0",
	})
}

// ShowQuestionnaire renders the empty questionnaire
func (h *Handler) ShowQuestionnaire(c *gin.Context) {
	c.HTML(http.StatusOK, questionnaireTemplate, newPageData(Submission{}))
}

// SubmitQuestionnaire handles the questionnaire form post and renders the results
func (h *Handler) SubmitQuestionnaire(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBind(&sub); err != nil {
		page := newPageData(sub)
		page.Error = msgMissingFields
		c.HTML(http.StatusBadRequest, questionnaireTemplate, page)
		return
	}

	page := newPageData(sub)

	rec, err := h.recommend(c, sub.Profile)
	if err != nil {
		page.Error = userMessage(err)
		c.HTML(statusFor(err), questionnaireTemplate, page)
		return
	}

	page.setRecommendation(rec)
	c.HTML(http.StatusOK, questionnaireTemplate, page)
}

// Recommend handles JSON recommendation requests
func (h *Handler) Recommend(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   domain.ErrInvalidRequest.Error(),
			"details": err.Error(),
		})
		return
	}

	rec, err := h.recommend(c, sub.Profile)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *Handler) recommend(c *gin.Context, profile domain.Profile) (*domain.Recommendation, error) {
	if h.recommender == nil {
		return nil, errors.New("recommendation service not configured")
	}

	rec, err := h.recommender.Recommend(c.Request.Context(), profile)
	if err != nil {
		h.logger.Warn("recommendation failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		return nil, err
	}
	return rec, nil
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidProfile), errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidProfile):
		return msgMissingFields
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return msgCatalogUnreached
	default:
		return msgUnexpected
	}
}
