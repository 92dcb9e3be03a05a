package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Composer is a document in the composers collection.
type Composer struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Version   int                `json:"__v" bson:"__v"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
}
