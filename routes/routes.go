package routes

import (
	"github.com/aaryaa4/civic-connectt/configs"
	"github.com/aaryaa4/civic-connectt/controllers"
	"github.com/aaryaa4/civic-connectt/middlewares"
	"github.com/aaryaa4/civic-connectt/repository"
	"github.com/aaryaa4/civic-connectt/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.AdminEmail, cfg.TrustTokenRole)
	reportSvc := services.NewReportService(reportRepo)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, reportRepo)

	// Controllers
	pageCtrl := controllers.NewPageController()
	authCtrl := controllers.NewAuthController(authSvc)
	reportCtrl := controllers.NewReportController(reportSvc, cfg.UploadDir)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)

	// Pages (public)
	r.GET("/", pageCtrl.Index)
	r.GET("/login", pageCtrl.Login)
	r.GET("/register", pageCtrl.Register)
	r.GET("/dashboard", pageCtrl.Dashboard)
	r.GET("/admin", pageCtrl.Admin)

	// Auth (public)
	r.POST("/token", authCtrl.Token)
	r.POST("/register", authCtrl.Register)

	// API (token carried as form field / query param)
	api := r.Group("/api", middlewares.TokenAuth(authSvc))
	{
		api.POST("/reports", reportCtrl.Create)
		api.GET("/reports", reportCtrl.List)
		api.POST("/reports/:id/status", reportCtrl.UpdateStatus)
		api.POST("/reports/:id/feedback", feedbackCtrl.Submit)
	}
}
