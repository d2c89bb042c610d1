package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/analytics"
)

// ReviewService owns review creation, listing, and deletion, plus the
// best-effort analytics side-effect after a successful create.
type ReviewService struct {
	Reviews repository.ReviewRepository
	Movies  repository.MovieRepository
	Tracker *analytics.Tracker
	Logger  *logrus.Logger
}

func NewReviewService(reviews repository.ReviewRepository, movies repository.MovieRepository, tracker *analytics.Tracker, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Reviews: reviews, Movies: movies, Tracker: tracker, Logger: logger}
}

type CreateReviewInput struct {
	MovieID  string
	Username string
	Review   string
	Rating   int
}

// Create persists the review, then enriches and dispatches the analytics
// event. Persistence must succeed first; the HTTP response never waits on
// the dispatch. A movieId that references no movie still persists fine, it
// only skips the event.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*entity.Review, error) {
	movieID, err := primitive.ObjectIDFromHex(in.MovieID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	rev := &entity.Review{
		MovieID:  movieID,
		Username: in.Username,
		Review:   in.Review,
		Rating:   in.Rating,
	}
	if err := s.Reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	movie, err := s.Movies.GetByID(ctx, in.MovieID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).Warn("movie lookup for analytics failed")
		}
		return rev, nil
	}
	genre := movie.Genre
	if genre == "" {
		genre = "Unknown"
	}
	s.Tracker.TrackAsync(analytics.Event{
		Category:  genre,
		Action:    "POST /reviews",
		Label:     "API Request for Movie Review",
		Value:     1,
		Dimension: movie.Title,
		Metric:    1,
	})
	return rev, nil
}

func (s *ReviewService) List(ctx context.Context) ([]entity.Review, error) {
	return s.Reviews.List(ctx)
}

// Delete removes the review by id. Deleting an id that no longer exists is
// still a success.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.Reviews.DeleteByID(ctx, id)
}
