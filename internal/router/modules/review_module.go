package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/container"
	handlers "github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/http"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/middleware"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/helpers"
)

// ReviewModule wires the review endpoints.
// Public: GET /reviews. Gated: POST /reviews, DELETE /reviews/:id.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
	JWT     *helpers.JWTManager
}

func NewReviewModule(h *handlers.ReviewHandler, jwt *helpers.JWTManager) *ReviewModule {
	return &ReviewModule{Handler: h, JWT: jwt}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	ipLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())
	userLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUsername())

	rg.GET("/reviews", ipLimiter, m.Handler.List)

	// The auth gate runs before the handler; an unauthenticated request
	// never reaches the store.
	auth := middleware.JWTAuth(m.JWT)
	rg.POST("/reviews", auth, userLimiter, m.Handler.Create)
	rg.DELETE("/reviews/:id", auth, userLimiter, m.Handler.Delete)
}
