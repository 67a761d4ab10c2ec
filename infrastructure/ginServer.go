package infrastructure

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "biogate.io/application/appErrors"
	"biogate.io/application/controller"
	"biogate.io/application/interfaces"
	"biogate.io/infrastructure/biometric"
	"biogate.io/infrastructure/logger"
	middlewares "biogate.io/infrastructure/middleware"
	ratelimit "biogate.io/infrastructure/ratelimit"
	webRoutev1 "biogate.io/infrastructure/routes/ginRouter/web/v1"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ginServer struct{}

func allowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 && os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:3000")
	}
	return origins
}

// NewRouter builds the engine with every route and middleware mounted.
func NewRouter() *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(logger.RequestLoggerMiddleware())

	if origins := allowedOrigins(); len(origins) != 0 {
		server.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "User-Agent", "X-Device-Id"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	server.Use(ratelimit.TokenBucketPerIP())
	server.MaxMultipartMemory = 2 * biometric.MaxImageBytes

	server.GET("/ping", func(ctx *gin.Context) {
		controller.Ping(&interfaces.ApplicationContext[any]{Ctx: ctx})
	})

	v1 := server.Group("/api")
	v1.Use(middlewares.UserAgentMiddleware())

	routerV1 := v1.Group("/v1")
	{
		webRoutev1.AuthRouter(routerV1)
		webRoutev1.BiometricRouter(routerV1)
		webRoutev1.SecurityRouter(routerV1)
	}

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL), nil)
	})
	return server
}

func (s *ginServer) Start() {
	server := NewRouter()

	gin_mode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if gin_mode == "debug" || gin_mode == "release" {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
		if err := server.Run(fmt.Sprintf(":%s", port)); err != nil {
			logger.Error("server stopped", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		}
	} else {
		panic(fmt.Sprintf("invalid gin mode used - %s", gin_mode))
	}
}
