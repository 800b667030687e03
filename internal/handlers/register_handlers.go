package handlers

import (
	"net/http"

	"github.com/SscSPs/l10n_addons/cmd/docs"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/SscSPs/l10n_addons/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Machine clients authenticate with an api key, users with a JWT.
	v1 := r.Group("/api/v1", middleware.APIKeyAuth(cfg.APIKeys), middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterCompanyRoutes(v1, services.Company)
	RegisterBankRoutes(v1, services.Bank)
	RegisterPaymentRoutes(v1, services.Payment)
	RegisterOrderRoutes(v1, services.Order)
	// SAT sync has its own per-client budget.
	var satSync []gin.HandlerFunc
	if rate, err := limiter.NewRateFromFormatted(cfg.SATSyncRateLimit); err == nil {
		satSync = append(satSync, middleware.RouteRateLimit(limiter.New(memory.NewStore(), rate)))
	}
	RegisterDocumentRoutes(v1, services.EDIDocument, satSync...)
	RegisterGlobalInvoiceRoutes(v1, services.GlobalInvoice)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "l10n add-ons backend API v1"})
}
