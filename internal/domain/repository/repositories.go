package repository

import (
	"context"
	"errors"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
)

// Sentinel errors returned by store implementations. Callers match with
// errors.Is instead of inspecting driver error codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidID    = errors.New("invalid id")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrRatingRange  = errors.New("rating must be between 0 and 5")
)

// UserRepository defines the interface for credential store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// MovieRepository defines the interface for catalog store operations.
// String ids are parsed by the store; a malformed id yields ErrInvalidID.
type MovieRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Movie, error)
	GetByIDWithReviews(ctx context.Context, id string) (*entity.MovieWithReviews, error)
	List(ctx context.Context) ([]entity.Movie, error)
}

// ReviewRepository defines the interface for review store operations.
// DeleteByID is idempotent: deleting an absent review is not an error.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	List(ctx context.Context) ([]entity.Review, error)
	ListByMovie(ctx context.Context, movieID string) ([]entity.Review, error)
	DeleteByID(ctx context.Context, id string) error
}
