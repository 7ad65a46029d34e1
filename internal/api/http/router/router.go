// Package router wires handlers, middleware and CORS into a gin engine.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/taskhub/server/internal/api/http/handler"
	"github.com/taskhub/server/internal/api/http/middleware"
	"github.com/taskhub/server/internal/logger"
	"github.com/taskhub/server/internal/model"
	"github.com/taskhub/server/internal/service"
)

// Router assembles the HTTP API for account operations.
type Router struct {
	authService    *service.Auth
	db             handler.Pinger
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	allowedOrigins []string
	staticDir      string
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	db handler.Pinger,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	allowedOrigins []string,
	staticDir string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		db:             db,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		staticDir:      staticDir,
		logger:         logger,
	}
}

// Register builds the gin engine with logging, recovery, CORS and routes.
func (r *Router) Register() *gin.Engine {
	log := r.logger.Component("http")

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(log).Handle())
	engine.Use(cors.New(r.corsConfig()))

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, log)

	authHandler := handler.NewAuth(r.authService, log)
	userHandler := handler.NewUser(r.authService, r.contextManager, log)
	healthHandler := handler.NewHealth(r.db, log)

	api := engine.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.SignUp)
			authRoutes.POST("/login", authHandler.Login)
		}

		api.GET("/health", healthHandler.Check)
		api.GET("/user", authenticate.Handle(), userHandler.Profile)
	}

	if r.staticDir != "" {
		engine.NoRoute(r.serveStatic)
	}

	return engine
}

func (r *Router) corsConfig() cors.Config {
	conf := cors.DefaultConfig()
	if slices.Contains(r.allowedOrigins, "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = r.allowedOrigins
	}
	conf.AllowHeaders = append(conf.AllowHeaders, "Authorization")
	return conf
}

// serveStatic hosts the frontend assets: exact file when it exists,
// index.html otherwise so client-side routes resolve.
func (r *Router) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	path := filepath.Join(r.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}

	c.File(filepath.Join(r.staticDir, "index.html"))
}
