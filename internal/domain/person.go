package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role struct {
	Text string `json:"text" bson:"text"`
}

type Dependent struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Person embeds its roles and dependents; neither has a lifecycle of its own.
type Person struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Version    int                `json:"__v" bson:"__v"`
	FirstName  string             `json:"firstName" bson:"firstName"`
	LastName   string             `json:"lastName" bson:"lastName"`
	Roles      []Role             `json:"roles" bson:"roles"`
	Dependents []Dependent        `json:"dependents" bson:"dependents"`
	BirthDate  string             `json:"birthDate" bson:"birthDate"`
}
