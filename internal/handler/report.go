package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scorecast/internal/report"
	"scorecast/internal/service"
)

type ReportHandler interface {
	Download(c *gin.Context)
}

type reportHandler struct {
	predictor *service.PredictionService
	generator *report.Generator
	logger    *zap.Logger
}

func NewReportHandler(predictor *service.PredictionService, generator *report.Generator, logger *zap.Logger) ReportHandler {
	return &reportHandler{predictor: predictor, generator: generator, logger: logger}
}

// Download handles GET /api/sessions/:id/report
func (h *reportHandler) Download(c *gin.Context) {
	sess, ok := h.predictor.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Please run the prediction first"})
		return
	}

	pdf, err := h.generator.Render(sess.Name, sess.Score, sess.WeakSubject, sess.Advice)
	if err != nil {
		var unsupported *report.ErrUnsupportedText
		if errors.As(err, &unsupported) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to render report", zap.String("session_id", sess.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(sess.Name)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
