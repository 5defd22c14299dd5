// Package router registers the v1 API routes.
package router

import (
	"articlehub/internal/delivery/api/middleware"
	"articlehub/internal/delivery/api/router/handler"
	deliverymiddleware "articlehub/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the mount point of every versioned route.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ArticleHandler *handler.ArticleHandler
	RankingHandler *handler.RankingHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *deliverymiddleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	articleHandler *handler.ArticleHandler
	rankingHandler *handler.RankingHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *deliverymiddleware.RateLimiter
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		articleHandler: params.ArticleHandler,
		rankingHandler: params.RankingHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	apiV1 := e.Group(APIPrefix)

	apiV1.GET("/healthcheck", handler.HealthCheck)

	authGroup := apiV1.Group("/auth")
	authGroup.Use(r.rateLimiter.Handle)
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
	}

	articlesGroup := apiV1.Group("/articles")
	{
		articlesGroup.GET("", r.articleHandler.List)
		articlesGroup.POST("", r.articleHandler.Create, r.authMiddleware.Authenticate)
		articlesGroup.GET("/:slug", r.articleHandler.Get)
		articlesGroup.GET("/:slug/like", r.articleHandler.ToggleLike, r.authMiddleware.Authenticate)
		articlesGroup.GET("/:slug/qr", r.articleHandler.ShareQR)
	}

	rankingsGroup := apiV1.Group("/rankings")
	{
		rankingsGroup.GET("/articles", r.rankingHandler.TopArticles)
	}
}
