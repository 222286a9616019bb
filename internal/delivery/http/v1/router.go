package v1

import (
	"net/http"
	"time"

	"go-jobplus-backend/config"
	"go-jobplus-backend/internal/delivery/http/middleware"
	"go-jobplus-backend/internal/delivery/http/response"
	"go-jobplus-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC     domain.AuthUsecase
	CompanyUC  domain.CompanyUsecase
	JobUC      domain.JobUsecase
	DeliveryUC domain.DeliveryUsecase
	AdminUC    domain.AdminUsecase
	Config     *config.Config
	// TemplateGlob overrides the landing-page template location (tests).
	TemplateGlob string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
	}))

	glob := deps.TemplateGlob
	if glob == "" {
		glob = "templates/*.html"
	}
	r.LoadHTMLGlob(glob)

	// Landing page
	NewFrontHandler(r)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewAuthHandler(v1, deps.AuthUC)
	NewUserHandler(v1, deps.AuthUC, deps.JobUC, deps.DeliveryUC)
	NewCompanyHandler(v1, deps.CompanyUC, deps.JobUC, deps.Config.IndexPerPage)
	NewJobHandler(v1, deps.JobUC, deps.Config.IndexPerPage)
	NewDeliveryHandler(v1, deps.DeliveryUC)
	NewAdminHandler(v1, deps.AdminUC)

	return r
}
