package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"CareMap-App/internal/application"
	"CareMap-App/internal/metrics"
	"CareMap-App/internal/usecase"
)

// NewRouter はページとAPIのルーティングを設定したエンジンを返す
func NewRouter(dashboard application.DashboardService, signup usecase.ProgramSignupUseCase, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(Recovery(log), AccessLogger(log))
	router.SetHTMLTemplate(tmpl)

	pages := NewPageHandler(dashboard, signup)
	router.GET("/", pages.Index)
	router.GET("/about", pages.About)
	router.GET("/programs", pages.Programs)
	router.GET("/signup", pages.SignupForm)
	router.POST("/signup", pages.SignupSubmit)

	api := NewDashboardHandler(dashboard, signup)
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", api.Health)
		apiGroup.GET("/centers", api.GetCenters)
		apiGroup.GET("/facets", api.GetFacets)
		apiGroup.GET("/areas", api.GetAreas)
		apiGroup.GET("/programs", api.GetPrograms)
		apiGroup.GET("/boundaries", api.GetBoundaries)
		apiGroup.POST("/signup", api.PostSignup)
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return router, nil
}
