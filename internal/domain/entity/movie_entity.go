package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie is a catalog record. The catalog is pre-seeded and read-only from
// the API's perspective.
type Movie struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Director string             `bson:"director,omitempty" json:"director,omitempty"`
	Genre    string             `bson:"genre,omitempty" json:"genre,omitempty"`
	Year     int                `bson:"year,omitempty" json:"year,omitempty"`
}

// MovieWithReviews is the read-time aggregate produced by the $lookup join.
// Reviews is always a slice, never nil, so it serializes as [] when empty.
type MovieWithReviews struct {
	Movie   `bson:",inline"`
	Reviews []Review `bson:"reviews" json:"reviews"`
}
