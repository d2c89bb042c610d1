package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Younes-Yassine/CSC3916-Assignment4/config"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/analytics"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	db          *mongo.Database
	redisClient *redis.Client
	tracker     *analytics.Tracker

	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongoDB(d *mongo.Database) { db = d }
func GetMongoDB() *mongo.Database  { return db }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetTracker(t *analytics.Tracker) { tracker = t }
func GetTracker() *analytics.Tracker  { return tracker }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
