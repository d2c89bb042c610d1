package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/container"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/middleware"
)

// DebugModule exposes expvar metrics and a request echo endpoint keyed by
// the configured debug key. Disabled via DEBUG_METRICS_ENABLED.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	if cfg != nil && !cfg.DebugMetricsEnabled {
		return
	}
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())

	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	rg.GET("/debug/echo", rl, echoHandler)
}

// echoHandler mirrors the request back with the debug key, for wiring checks.
func echoHandler(c *gin.Context) {
	var body any = "No body"
	var parsed any
	if err := c.ShouldBindJSON(&parsed); err == nil {
		body = parsed
	}
	key := ""
	if cfg := container.GetConfig(); cfg != nil {
		key = cfg.UniqueKey
	}
	c.JSON(http.StatusOK, gin.H{
		"headers": c.Request.Header,
		"key":     key,
		"body":    body,
	})
}
