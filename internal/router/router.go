// Package router assembles the echo instance: middleware chain, error
// handler, validator and every route.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/auth"
	"github.com/zykorwx/dapp/internal/handler"
	"github.com/zykorwx/dapp/internal/middleware"
	"github.com/zykorwx/dapp/internal/repository"
	"github.com/zykorwx/dapp/internal/service"
	"github.com/zykorwx/dapp/internal/validation"
	"github.com/zykorwx/dapp/pkg/config"
	"github.com/zykorwx/dapp/pkg/jwtutil"
	"github.com/zykorwx/dapp/pkg/logger"
	"github.com/zykorwx/dapp/pkg/metrics"
	"gorm.io/gorm"
)

// Options carries what the router needs from main. Registerer and Gatherer
// default to the global Prometheus registry when nil.
type Options struct {
	Config     *config.Config
	DB         *gorm.DB
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// New builds the HTTP server
func New(opts Options) *echo.Echo {
	conf := opts.Config

	empleadoRepo := repository.NewEmpleadoRepository(opts.DB)
	comercioRepo := repository.NewComercioRepository(opts.DB)

	empleados := handler.NewEmpleadoHandler(service.NewEmpleadoService(empleadoRepo), conf.Tenancy)
	comercios := handler.NewComercioHandler(service.NewComercioService(comercioRepo))
	health := handler.NewHealthHandler(conf.ServiceName, opts.DB)

	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})
	httpMetrics := metrics.NewHTTPMetrics(conf.Metrics.Prefix, opts.Registerer)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apperror.HTTPErrorHandler
	e.Validator = validation.New()

	// Order matters: the logger and metrics middlewares render errors
	// themselves so they observe the final status; Recover stays innermost.
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())
	e.Use(echomw.Recover())

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler(opts.Gatherer)))

	var tenant []echo.MiddlewareFunc
	if conf.Tenancy.Scoped {
		tenant = append(tenant, middleware.APIKeyAuth(auth.NewResolver(comercioRepo)))
	}
	g := e.Group("/empleados", tenant...)
	g.GET("", empleados.List)
	g.POST("", empleados.Create)
	g.GET("/:uuid", empleados.Get)
	g.PUT("/:uuid", empleados.Update)
	g.DELETE("/:uuid", empleados.Delete)

	// Writes on the collection path take no id, with or without credentials.
	// Registered after the group so its catch-all routes cannot shadow them.
	e.PUT("/empleados", handler.NeedID)
	e.DELETE("/empleados", handler.NeedID)

	if conf.JWT.SigningKey != "" {
		admin := e.Group("/admin", middleware.AdminAuth(jwt))
		admin.POST("/comercios", comercios.Create)
		admin.GET("/comercios", comercios.List)
	}

	return e
}
