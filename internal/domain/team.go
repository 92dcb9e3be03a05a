package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Player has no identity outside the team that holds it.
type Player struct {
	FirstName string   `json:"firstName" bson:"firstName"`
	LastName  string   `json:"lastName" bson:"lastName"`
	Salary    *float64 `json:"salary,omitempty" bson:"salary,omitempty"`
}

type Team struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Version int                `json:"__v" bson:"__v"`
	Name    string             `json:"name" bson:"name"`
	Mascot  string             `json:"mascot" bson:"mascot"`
	Players []Player           `json:"players" bson:"players"`
}
