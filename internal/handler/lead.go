package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scorecast/internal/models"
	"scorecast/internal/repository"
	"scorecast/internal/service"
)

type LeadHandler interface {
	Create(c *gin.Context)
}

type leadHandler struct {
	predictor *service.PredictionService
	store     repository.LeadStore
	logger    *zap.Logger
}

func NewLeadHandler(predictor *service.PredictionService, store repository.LeadStore, logger *zap.Logger) LeadHandler {
	return &leadHandler{predictor: predictor, store: store, logger: logger}
}

type CreateLeadRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Phone     string `json:"phone" binding:"required,len=10"`
	Interest  string `json:"interest"`
}

// Create handles POST /api/leads
func (h *leadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind lead request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := h.predictor.Session(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Please run the prediction first"})
		return
	}

	interest := req.Interest
	if interest == "" {
		interest = "Low Score Alert"
	}

	lead := models.Lead{
		Name:      sess.Name,
		Phone:     req.Phone,
		Score:     fmt.Sprintf("%.1f", sess.Score),
		Interest:  interest,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}

	res := h.store.Append(c.Request.Context(), lead)
	if !res.Saved {
		// No retry, no queue: the lead is lost and the caller gets an
		// honest notice.
		c.JSON(http.StatusAccepted, gin.H{"saved": false, "message": "Request received but not saved - database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": true, "message": "Request Sent!"})
}
