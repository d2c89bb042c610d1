package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Younes-Yassine/CSC3916-Assignment4/config"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/container"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/infrastructure/mongodb"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/middleware"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/router"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/analytics"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/helpers"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Document store
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	// Redis backs the rate limiters; everything fails open without it
	if cfg.RateLimitEnabled {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		container.SetRedis(rdb)
	}

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	tracker := analytics.NewTracker(cfg.GATrackingID, cfg.AnalyticsEndpoint, cfg.AnalyticsTimeout, logger)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongoDB(db)
	container.SetJWT(jwtManager)
	container.SetTracker(tracker)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(cors.New(corsConfig(cfg)))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// corsConfig mirrors the legacy server's open CORS unless origins are pinned.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	} else {
		c.AllowAllOrigins = true
	}
	return c
}
