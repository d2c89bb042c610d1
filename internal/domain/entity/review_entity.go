package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a user-submitted movie review. MovieID is not enforced to
// reference an existing movie; an orphaned reference is tolerated.
type Review struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MovieID  primitive.ObjectID `bson:"movieId" json:"movieId"`
	Username string             `bson:"username" json:"username"`
	Review   string             `bson:"review" json:"review"`
	Rating   int                `bson:"rating" json:"rating"`
}
