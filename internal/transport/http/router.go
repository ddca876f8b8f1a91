package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/shift-calendar/internal/health"
	"github.com/ErlanBelekov/shift-calendar/internal/transport/http/handler"
	"github.com/ErlanBelekov/shift-calendar/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type tokenVerifier interface {
	Verify(raw string) (string, error)
}

type RouterDeps struct {
	Logger       *slog.Logger
	AuthHandler  *handler.AuthHandler
	EntryHandler *handler.EntryHandler
	Tokens       tokenVerifier
	Checker      *health.Checker
	CORSOrigins  []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(middleware.CORS(deps.CORSOrigins))
	r.Use(sloggin.New(deps.Logger))
	r.Use(middleware.Metrics("/healthz", "/readyz"))

	if deps.Checker != nil {
		r.GET("/healthz", gin.WrapH(deps.Checker.LivenessHandler()))
		r.GET("/readyz", gin.WrapH(deps.Checker.ReadinessHandler()))
	}

	api := r.Group("/api")
	api.POST("/register", deps.AuthHandler.Register)
	api.POST("/login", deps.AuthHandler.Login)

	// Protected calendar routes
	calendar := api.Group("/calendar", middleware.Auth(deps.Tokens, deps.Logger))
	calendar.GET("", deps.EntryHandler.List)
	calendar.POST("/add", deps.EntryHandler.Create)
	calendar.GET("/getById/:id", deps.EntryHandler.GetByID)
	calendar.PUT("/update/:id", deps.EntryHandler.Update)
	calendar.DELETE("/delete/:id", deps.EntryHandler.Delete)

	return r
}
