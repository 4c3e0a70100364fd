package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"onboardly/pkg/leadform"
	"onboardly/pkg/middleware"
	"onboardly/pkg/models"
	"onboardly/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.LeadSubmissionService
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LeadSubmissionService, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		submissionService: submissionService,
		logger:            logger,
	}
}

// Register mounts the lead intake routes
func (h *Handlers) Register(router gin.IRouter) {
	router.POST("/leads", h.CreateLead)
	router.GET("/leads", h.ListLeads)
	router.GET("/health", h.HealthCheck)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// CreateLead accepts a lead posted by the landing page form.
// Error bodies carry "message" so the form can surface it as-is.
func (h *Handlers) CreateLead(c *gin.Context) {
	var data models.LeadForm

	if err := c.ShouldBindJSON(&data); err != nil {
		h.logger.Debug("rejected lead body",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": leadform.ReasonRequired.Message(),
		})
		return
	}

	lead, err := h.submissionService.CreateLead(c.Request.Context(), data)
	if err != nil {
		var vErr *leadform.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   string(vErr.Reason),
				"message": vErr.Error(),
			})
			return
		}

		h.logger.Error("error creating lead",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal",
			"message": leadform.DefaultRejectedMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Lead created successfully",
		"id":      lead.ID,
	})
}

// ListLeads returns every stored lead
func (h *Handlers) ListLeads(c *gin.Context) {
	leads, err := h.submissionService.ListLeads(c.Request.Context())
	if err != nil {
		h.logger.Error("error listing leads",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal",
			"message": "Could not load leads",
		})
		return
	}

	response := make([]models.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		response = append(response, lead.ToResponse())
	}
	c.JSON(http.StatusOK, response)
}
