package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scorecast/internal/service"
)

type DashboardHandler interface {
	GetDashboard(c *gin.Context)
	ListLeads(c *gin.Context)
	ExportCSV(c *gin.Context)
}

type dashboardHandler struct {
	dashboard *service.DashboardService
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.Logger) DashboardHandler {
	return &dashboardHandler{dashboard: dashboard, logger: logger}
}

// GetDashboard handles GET /api/admin/dashboard
func (h *dashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Stats(c.Request.Context()))
}

// ListLeads handles GET /api/admin/leads
func (h *dashboardHandler) ListLeads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"leads": h.dashboard.Leads(c.Request.Context())})
}

// ExportCSV handles GET /api/admin/leads/export
func (h *dashboardHandler) ExportCSV(c *gin.Context) {
	out, err := h.dashboard.ExportCSV(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to export leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export leads"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
	c.Data(http.StatusOK, "text/csv", out)
}
