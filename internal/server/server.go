package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scorecast/internal/handler"
	"scorecast/internal/middleware"
	"scorecast/internal/report"
	"scorecast/internal/repository"
	"scorecast/internal/service"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(
	predictor *service.PredictionService,
	authService service.AuthService,
	store repository.LeadStore,
	generator *report.Generator,
	logger *zap.Logger,
) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		logger: logger,
	}

	s.setupRoutes(predictor, authService, store, generator)

	return s
}

func (s *Server) setupRoutes(
	predictor *service.PredictionService,
	authService service.AuthService,
	store repository.LeadStore,
	generator *report.Generator,
) {
	predictHandler := handler.NewPredictHandler(predictor, s.logger)
	reportHandler := handler.NewReportHandler(predictor, generator, s.logger)
	leadHandler := handler.NewLeadHandler(predictor, store, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.logger)

	dashboardService := service.NewDashboardService(store, s.logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Student pipeline
	api := s.router.Group("/api")
	api.POST("/predict", predictHandler.Predict)
	api.GET("/sessions/:id/schedule", predictHandler.GetSchedule)
	api.GET("/sessions/:id/report", reportHandler.Download)
	api.POST("/leads", leadHandler.Create)

	// Admin dashboard
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(authService, s.logger))
	{
		admin.GET("/dashboard", dashboardHandler.GetDashboard)
		admin.GET("/leads", dashboardHandler.ListLeads)
		admin.GET("/leads/export", dashboardHandler.ExportCSV)
	}
}

func (s *Server) Run(addr string) error {
	s.logger.Info("Server starting", zap.String("addr", addr))
	return s.router.Run(addr)
}
