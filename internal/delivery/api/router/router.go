// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookshelf/config"
	"bookshelf/internal/delivery/api/middleware"
	"bookshelf/internal/delivery/api/router/handler"
	deliverymiddleware "bookshelf/internal/delivery/middleware"
	"bookshelf/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	BookHandler         *handler.BookHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *deliverymiddleware.RateLimitMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	bookHandler         *handler.BookHandler
	reviewHandler       *handler.ReviewHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *deliverymiddleware.RateLimitMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		bookHandler:         params.BookHandler,
		reviewHandler:       params.ReviewHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, rate limited per client
	authGroup := e.Group("/api/auth")
	authGroup.Use(r.rateLimitMiddleware.Handle)
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Every book route requires authentication
	booksGroup := e.Group("/api/books")
	booksGroup.Use(r.authMiddleware.Authenticate)
	{
		booksGroup.POST("/add", r.bookHandler.AddBook)
		booksGroup.GET("/all", r.bookHandler.ListBooks)
		booksGroup.GET("/filter", r.bookHandler.FilterBooks)
		booksGroup.GET("/search", r.bookHandler.SearchBooks)
		booksGroup.GET("/details/:id", r.bookHandler.GetBook)

		booksGroup.POST("/add-review", r.reviewHandler.AddReview)
		booksGroup.PUT("/review/update/:id", r.reviewHandler.UpdateReview)
		booksGroup.DELETE("/review/delete/:id", r.reviewHandler.DeleteReview)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.metrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
