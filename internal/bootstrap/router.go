package bootstrap

import (
	"log/slog"

	httpapi "github.com/GoSim-25-26J-441/leadboard-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/api/http/middleware"
	boardhttp "github.com/GoSim-25-26J-441/leadboard-backend/internal/board/http"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/service"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	// DB is only used by the health check; nil reports "disabled".
	DB        httpapi.Pinger
	Board     *service.BoardService
	Logger    *slog.Logger
	RateRPS   int
	RateBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Logger == nil {
		dep.Logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(middleware.RateLimit(dep.RateRPS, dep.RateBurst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	boardhttp.New(dep.Board).Register(r)
	r.NoRoute(boardhttp.NotFound)

	return r
}
