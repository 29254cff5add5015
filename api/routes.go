package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-api/api/auth"
	"github.com/killallgit/podcast-api/api/categories"
	"github.com/killallgit/podcast-api/api/episodes"
	"github.com/killallgit/podcast-api/api/health"
	"github.com/killallgit/podcast-api/api/playlists"
	"github.com/killallgit/podcast-api/api/podcasts"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/api/users"
	"github.com/killallgit/podcast-api/api/version"
	_ "github.com/killallgit/podcast-api/docs/swagger"
)

// BasePath prefixes every authenticated route
const BasePath = "/api/v1"

// RegisterRoutes registers all API routes. A nil limiter disables rate
// limiting.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiter *RateLimiter) error {
	if deps == nil || deps.Auth == nil {
		return errors.New("routes require an auth service")
	}

	// public routes
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	authHandler := auth.NewHandler(deps.Auth)

	// every v1 route needs a bearer token; limits are applied per user
	v1 := engine.Group(BasePath)
	v1.Use(authHandler.AuthMiddleware())
	if limiter != nil {
		v1.Use(limiter.Middleware())
	}

	v1.GET("/me", authHandler.Me)

	categories.RegisterRoutes(v1.Group("/categories"), deps)
	podcasts.RegisterRoutes(v1.Group("/podcasts"), deps)
	episodes.RegisterRoutes(v1.Group("/episodes"), deps)
	playlists.RegisterRoutes(v1.Group("/playlists"), deps)
	users.RegisterRoutes(v1.Group("/users"), deps)

	return nil
}
