package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scorecast/internal/models"
	"scorecast/internal/schedule"
	"scorecast/internal/service"
)

type PredictHandler interface {
	Predict(c *gin.Context)
	GetSchedule(c *gin.Context)
}

type predictHandler struct {
	predictor *service.PredictionService
	logger    *zap.Logger
}

func NewPredictHandler(predictor *service.PredictionService, logger *zap.Logger) PredictHandler {
	return &predictHandler{predictor: predictor, logger: logger}
}

type PredictResponse struct {
	SessionID string                 `json:"session_id"`
	Score     float64                `json:"score"`
	Advice    string                 `json:"advice"`
	Tier      models.Tier            `json:"tier"`
	Schedule  []models.ScheduleEntry `json:"schedule"`
}

// Predict handles POST /api/predict
func (h *predictHandler) Predict(c *gin.Context) {
	var input models.StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("Failed to bind prediction input", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pred, sess := h.predictor.Predict(input)

	c.JSON(http.StatusOK, PredictResponse{
		SessionID: sess.ID,
		Score:     pred.Score,
		Advice:    pred.Advice,
		Tier:      pred.Tier,
		Schedule:  schedule.Build(sess.Hours, sess.WeakSubject),
	})
}

// GetSchedule handles GET /api/sessions/:id/schedule
func (h *predictHandler) GetSchedule(c *gin.Context) {
	sess, ok := h.predictor.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Please run the prediction first"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     sess.Name,
		"schedule": schedule.Build(sess.Hours, sess.WeakSubject),
	})
}
