package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
)

// MovieService reads the catalog. Movies are pre-seeded; there is no write
// path here.
type MovieService struct {
	Movies repository.MovieRepository
	Logger *logrus.Logger
}

func NewMovieService(movies repository.MovieRepository, logger *logrus.Logger) *MovieService {
	return &MovieService{Movies: movies, Logger: logger}
}

func (s *MovieService) Get(ctx context.Context, id string) (*entity.Movie, error) {
	return s.Movies.GetByID(ctx, id)
}

// GetWithReviews returns the movie joined with all of its reviews. A movie
// with no reviews yields an empty reviews slice, not an error.
func (s *MovieService) GetWithReviews(ctx context.Context, id string) (*entity.MovieWithReviews, error) {
	return s.Movies.GetByIDWithReviews(ctx, id)
}

func (s *MovieService) List(ctx context.Context) ([]entity.Movie, error) {
	return s.Movies.List(ctx)
}
