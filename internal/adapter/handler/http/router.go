package http

import (
	"strings"

	"github.com/wimtiaz/user_registration_service/internal/config"
	"github.com/wimtiaz/user_registration_service/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	httpConfig *config.HTTP,
	formats *config.Format,
	logger ports.LoggerPort,
	userHandler *UserHandler,
) (*Router, error) {
	if httpConfig.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	ginConfig := cors.DefaultConfig()
	ginConfig.AllowOrigins = strings.Split(httpConfig.AllowedOrigins, ",")

	router := gin.New()
	router.Use(
		AccessLogMiddleware(logger),
		RecoveryMiddleware(logger, formats.TimestampOutput),
		cors.New(ginConfig),
	)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.POST("/register", userHandler.Register)
		v1.GET("/users/:id", userHandler.GetUser)
	}

	return &Router{
		Engine: router,
	}, nil
}

// Starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
