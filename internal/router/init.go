package router

import (
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/application"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/container"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/infrastructure/mongodb"
	handlers "github.com/Younes-Yassine/CSC3916-Assignment4/internal/interface/http"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/router/modules"
)

// InitModules builds the repositories, services, and handlers from the
// container singletons and registers every feature module.
// Called once during application startup.
func InitModules(r *Registry) {
	db := container.GetMongoDB()
	logger := container.GetLogger()

	users := mongodb.NewUserRepository(db)
	movies := mongodb.NewMovieRepository(db)
	reviews := mongodb.NewReviewRepository(db)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	movieSvc := application.NewMovieService(movies, logger)
	reviewSvc := application.NewReviewService(reviews, movies, container.GetTracker(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewMovieModule(handlers.NewMovieHandler(movieSvc, logger)))
	r.Add(modules.NewReviewModule(handlers.NewReviewHandler(reviewSvc, logger), container.GetJWT()))
	r.Add(modules.NewDebugModule())
}
