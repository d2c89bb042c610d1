package handlers

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
)

// In-memory stores implementing the repository contracts, including the
// store-owned constraints (unique usernames, rating bounds, idempotent
// delete), so handler tests run without a database.

type memData struct {
	mu      sync.Mutex
	users   []entity.User
	movies  []entity.Movie
	reviews []entity.Review
}

type fakeUserRepo struct {
	data        *memData
	createCalls int
	failCreate  error
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	r.createCalls++
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.data.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateKey
		}
	}
	u.ID = primitive.NewObjectID()
	r.data.users = append(r.data.users, *u)
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i := range r.data.users {
		if r.data.users[i].Username == username {
			u := r.data.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeMovieRepo struct {
	data     *memData
	getCalls int
	fail     error
}

func (r *fakeMovieRepo) GetByID(_ context.Context, id string) (*entity.Movie, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	r.getCalls++
	if r.fail != nil {
		return nil, r.fail
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for i := range r.data.movies {
		if r.data.movies[i].ID == oid {
			m := r.data.movies[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) GetByIDWithReviews(ctx context.Context, id string) (*entity.MovieWithReviews, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	joined := []entity.Review{}
	for _, rev := range r.data.reviews {
		if rev.MovieID == m.ID {
			joined = append(joined, rev)
		}
	}
	return &entity.MovieWithReviews{Movie: *m, Reviews: joined}, nil
}

func (r *fakeMovieRepo) List(_ context.Context) ([]entity.Movie, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]entity.Movie, len(r.data.movies))
	copy(out, r.data.movies)
	return out, nil
}

type fakeReviewRepo struct {
	data        *memData
	createCalls int
	fail        error
}

func (r *fakeReviewRepo) Create(_ context.Context, rev *entity.Review) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	r.createCalls++
	if r.fail != nil {
		return r.fail
	}
	if rev.Rating < 0 || rev.Rating > 5 {
		return repository.ErrRatingRange
	}
	rev.ID = primitive.NewObjectID()
	r.data.reviews = append(r.data.reviews, *rev)
	return nil
}

func (r *fakeReviewRepo) List(_ context.Context) ([]entity.Review, error) {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]entity.Review, 0, len(r.data.reviews))
	out = append(out, r.data.reviews...)
	return out, nil
}

func (r *fakeReviewRepo) ListByMovie(_ context.Context, movieID string) ([]entity.Review, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	out := []entity.Review{}
	for _, rev := range r.data.reviews {
		if rev.MovieID == oid {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) DeleteByID(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	oid, _ := primitive.ObjectIDFromHex(id)
	for i := range r.data.reviews {
		if r.data.reviews[i].ID == oid {
			r.data.reviews = append(r.data.reviews[:i], r.data.reviews[i+1:]...)
			return nil
		}
	}
	return nil // idempotent
}

var (
	_ repository.UserRepository   = (*fakeUserRepo)(nil)
	_ repository.MovieRepository  = (*fakeMovieRepo)(nil)
	_ repository.ReviewRepository = (*fakeReviewRepo)(nil)
)
