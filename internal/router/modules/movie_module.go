package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/container"
	handlers "github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/http"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/middleware"
)

// MovieModule wires the read-only catalog endpoints.
// Public: GET /movies, GET /movies/:id (optional ?reviews=true join).
type MovieModule struct {
	Handler *handlers.MovieHandler
}

func NewMovieModule(h *handlers.MovieHandler) *MovieModule {
	return &MovieModule{Handler: h}
}

func (m *MovieModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	rg.GET("/movies", limiter, m.Handler.List)
	rg.GET("/movies/:id", limiter, m.Handler.Get)
}
