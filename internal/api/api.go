package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/restockly/backend/internal/api/handlers"
	"github.com/restockly/backend/internal/api/middleware"
	"github.com/restockly/backend/internal/service"
)

func NewRouter(planningService *service.PlanningService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalized, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalized) > 0 {
			corsConfig.AllowOrigins = normalized
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	planningHandler := handlers.NewPlanningHandler(planningService)

	apiGroup := router.Group("/api/v1")
	planningGroup := apiGroup.Group("/planning")
	{
		planningGroup.GET("/recommendations", planningHandler.GetRecommendations)
		planningGroup.GET("/velocity", planningHandler.GetVelocityMetrics)
		planningGroup.GET("/fees", planningHandler.GetFeeEstimates)
		planningGroup.GET("/health-assessments", planningHandler.GetHealthAssessments)
		planningGroup.GET("/reports/excess", planningHandler.GetExcessReport)
		planningGroup.GET("/reports/low", planningHandler.GetLowReport)
		planningGroup.POST("/reorder-plan", planningHandler.PostReorderPlan)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) (normalized []string, allowAll bool) {
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			return nil, true
		}
		normalized = append(normalized, strings.TrimSuffix(origin, "/"))
	}
	return normalized, false
}
