package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/container"
	handlers "github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/http"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/middleware"
)

// AuthModule wires the signup/signin endpoints.
// Public: POST /signup, POST /signin (rate-limited per IP).
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	signinLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/signin", signinLimiter, m.Handler.Signin)
}
