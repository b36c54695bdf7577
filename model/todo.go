package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Todo is the stored document shape. The ObjectID is assigned by MongoDB on
// insert and never goes over the wire directly; dto maps it to a hex string.
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Deadline    string             `bson:"deadline"`
}
