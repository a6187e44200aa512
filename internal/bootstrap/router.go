package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/agencydash/agency-backend/internal/api/http"
	"github.com/agencydash/agency-backend/internal/api/http/middleware"
	"github.com/agencydash/agency-backend/internal/auth"
	"github.com/agencydash/agency-backend/internal/clients"
	"github.com/agencydash/agency-backend/internal/dashboard"
	"github.com/agencydash/agency-backend/internal/metrics"
	"github.com/agencydash/agency-backend/internal/projects"
	"github.com/agencydash/agency-backend/internal/settings"
	"github.com/agencydash/agency-backend/internal/users"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Tokens      *auth.TokenManager
	DB          *pgxpool.Pool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)
	metrics.RegisterRoutes(r)

	userRepo := users.NewRepo(dep.DB)
	clientRepo := clients.NewRepo(dep.DB)
	projectRepo := projects.NewRepo(dep.DB)
	dashboardRepo := dashboard.NewRepo(dep.DB)
	settingsRepo := settings.NewRepo(dep.DB)

	api := r.Group("/api/v1")

	auth.Register(api.Group("/auth"), userRepo, dep.Tokens)

	protected := api.Group("")
	protected.Use(auth.RequireUser(dep.Tokens, userRepo))

	users.Register(protected.Group("/user"), userRepo)
	clients.Register(protected.Group("/clients"), clientRepo)
	projects.Register(protected.Group("/projects"), projectRepo, clientRepo)
	dashboard.Register(protected.Group("/dashboard"), dashboardRepo)
	settings.Register(protected.Group("/settings"), settingsRepo)

	return r
}
