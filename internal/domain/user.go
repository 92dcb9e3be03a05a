package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. PasswordHash holds the bcrypt hash and is never rendered.
type User struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Version        int                `json:"__v" bson:"__v"`
	UserName       string             `json:"userName" bson:"userName"`
	PasswordHash   string             `json:"-" bson:"password"`
	EmailAddresses []string           `json:"emailAddress" bson:"emailAddress"`
}
