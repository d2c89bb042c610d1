package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
)

const (
	ratingMin = 0
	ratingMax = 5
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

// Create persists the review. The store owns the rating bound: a rating
// outside [0,5] is rejected here, before any write.
func (r *ReviewRepository) Create(ctx context.Context, rev *entity.Review) error {
	if rev.Rating < ratingMin || rev.Rating > ratingMax {
		return repository.ErrRatingRange
	}
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rev.ID = id
	}
	return nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID string) ([]entity.Review, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	return r.find(ctx, bson.M{"movieId": oid})
}

// DeleteByID removes the review if present. Deleting an absent id succeeds.
func (r *ReviewRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidID
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]entity.Review, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var reviews []entity.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	return reviews, nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
