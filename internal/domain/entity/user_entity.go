package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the credential record for a signed-up account.
// Password holds a bcrypt hash, never plaintext. Username carries a unique
// index on the collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
