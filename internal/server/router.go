// Package server wires routes, middleware and the centralized error
// handler. No component downstream of a route handler writes an HTTP
// response directly; everything funnels through the handler configured
// here.
package server

import (
	"net/http"
	"time"

	"github.com/atakand/todo-api/internal/apperr"
	"github.com/atakand/todo-api/internal/handlers"
	"github.com/atakand/todo-api/internal/middleware"
	"github.com/atakand/todo-api/internal/repository"
	"github.com/atakand/todo-api/internal/services"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Options configure the router.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Dev echoes internal error detail in 500 responses.
	Dev bool
}

// New constructs the root handler with all routes and middlewares applied.
func New(db *gorm.DB, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(opts.Dev)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())

	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	authSvc := services.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	todoSvc := services.NewTodoService(todoRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	userSvc := services.NewUserService(userRepo)

	ah := handlers.NewAuthHandler(authSvc)
	th := handlers.NewTodoHandler(todoSvc)
	ch := handlers.NewCategoryHandler(categorySvc)
	uh := handlers.NewUserHandler(userSvc)
	sh := handlers.NewStatsHandler(todoSvc)

	authn := middleware.Authenticate(userRepo, opts.JWTSecret)

	// Health endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		if err := db.Exec("SELECT 1").Error; err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Fixed request budget per caller IP; authentication endpoints get a
	// smaller, stricter budget.
	api := e.Group("/api", rateLimiter(100, 15*time.Minute,
		"Too many requests, please try again later."))

	authGroup := api.Group("/auth", rateLimiter(5, time.Hour,
		"Too many login requests, please try again in 1 hour or contact the admin."))
	authGroup.POST("/signup", ah.Signup)
	authGroup.POST("/login", ah.Login)

	todos := api.Group("/todos", authn)
	todos.GET("", th.List)
	todos.GET("/search", th.Search)
	todos.GET("/:id", th.Get)
	todos.POST("", th.Create)
	todos.PUT("/:id", th.Update)
	todos.PATCH("/:id/status", th.UpdateStatus)
	todos.DELETE("/:id", th.Delete)
	todos.GET("/:id/categories", th.Categories)
	todos.POST("/:id/categories", th.AssignCategory)
	todos.DELETE("/:id/categories/:categoryId", th.RemoveCategory)

	categories := api.Group("/categories", authn)
	categories.GET("", ch.List)
	categories.GET("/:id", ch.Get)
	categories.GET("/:id/todos", ch.Todos)
	categories.POST("", ch.Create, middleware.RequireAdmin)
	categories.PATCH("/:id", ch.Update, middleware.RequireAdmin)
	categories.DELETE("/:id", ch.Delete, middleware.RequireAdmin)

	stats := api.Group("/stats", authn)
	stats.GET("/todos", sh.Todos)
	stats.GET("/priorities", sh.Priorities)

	users := api.Group("/users", authn)
	users.GET("/me", uh.Me)
	users.PATCH("/me", uh.UpdateMe)
	users.DELETE("/me", uh.DeleteMe)
	users.GET("", uh.List, middleware.RequireAdmin)
	users.POST("", uh.Create, middleware.RequireAdmin)
	users.GET("/:id", uh.Get, middleware.RequireAdmin)
	users.PATCH("/:id", uh.Update, middleware.RequireAdmin)
	users.DELETE("/:id", uh.Delete, middleware.RequireAdmin)

	return e
}

// rateLimiter allows budget requests per window per client IP, token-bucket
// style.
func rateLimiter(budget int, window time.Duration, message string) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(budget) / window.Seconds()),
		Burst:     budget,
		ExpiresIn: window,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return apperr.New(http.StatusTooManyRequests, message)
		},
	})
}
