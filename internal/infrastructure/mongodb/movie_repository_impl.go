package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/repository"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection("movies")}
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*entity.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	m := &entity.Movie{}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetByIDWithReviews runs the movie/reviews join as a single aggregation.
// The aggregate is computed at read time, never persisted.
func (r *MovieRepository) GetByIDWithReviews(ctx context.Context, id string) (*entity.MovieWithReviews, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "reviews"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "movieId"},
			{Key: "as", Value: "reviews"},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var results []entity.MovieWithReviews
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, repository.ErrNotFound
	}
	out := results[0]
	if out.Reviews == nil {
		out.Reviews = []entity.Review{}
	}
	return &out, nil
}

func (r *MovieRepository) List(ctx context.Context) ([]entity.Movie, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	var movies []entity.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []entity.Movie{}
	}
	return movies, nil
}

var _ repository.MovieRepository = (*MovieRepository)(nil)
