package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/paperfx/paperfx_app/cmd/docs"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/infrastructure/events"
	"github.com/paperfx/paperfx_app/internal/middleware"
	"github.com/paperfx/paperfx_app/internal/platform/config"
	"github.com/paperfx/paperfx_app/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tradePublisher *events.TradePublisher,
	posthogClient *utils.PosthogClientWrapper,
) {
	registerValidators()

	// Health and metrics endpoints stay outside the API groups.
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerHomeRoutes(r)

	// Public routes: currency registry and authentication.
	registerCurrencyRoutes(r.Group("/api/v1"), services.Currency)
	registerAuthRoutes(r, cfg, services)

	// Authenticated API v1 routes.
	setupAPIV1Routes(r, cfg, services, tradePublisher, posthogClient)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to
// specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tradePublisher *events.TradePublisher,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerRateRoutes(v1, services.Rates, services.Updater)
	registerTradeRoutes(v1, services.Trading, tradePublisher, posthogClient)
	registerPortfolioRoutes(v1, services.Trading)
	registerUserRoutes(v1, services.User)
}

// registerValidators wires custom binding validations into gin's validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// currencycode: well-formed currency code (2-5 alphanumerics after
	// trimming and uppercasing). Support lookups stay in the services so
	// unknown codes get a proper error body.
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		_, ok := domain.NormalizeCurrencyCode(fl.Field().String())
		return ok
	})
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
