package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"trending-board/infrastructure/logger"
	httpHandler "trending-board/interfaces/http"
	"trending-board/interfaces/middleware"
	"trending-board/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// InitiateRouter wires the dashboard routes. The recovery middleware is the
// top-level catch-all: any panic is logged for the operator and rendered as a
// generic localized error page instead of killing the session.
func InitiateRouter(
	dashboardHandler httpHandler.IDashboardHandler,
	authUsecase usecase.IAuthUsecase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(ctx *gin.Context, err any) {
		logger.GetLogger().WithField("error", err).Error("Render cycle panic recovered")
		ctx.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{})
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8501"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	router.Use(middleware.Session(authUsecase))

	router.GET("/", dashboardHandler.Dashboard)
	router.POST("/login", dashboardHandler.Login)
	router.POST("/logout", dashboardHandler.Logout)
	router.POST("/refresh", dashboardHandler.Refresh)

	api := router.Group("api")
	api.GET("/trending", dashboardHandler.TrendingAPI)

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
