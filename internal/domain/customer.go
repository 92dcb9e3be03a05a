package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type LineItem struct {
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity float64 `json:"quantity" bson:"quantity"`
}

type Invoice struct {
	Subtotal    float64    `json:"subtotal" bson:"subtotal"`
	Tax         float64    `json:"tax" bson:"tax"`
	DateCreated string     `json:"dateCreated" bson:"dateCreated"`
	DateShipped string     `json:"dateShipped" bson:"dateShipped"`
	LineItems   []LineItem `json:"lineItems" bson:"lineItems"`
}

// Customer owns its invoices; invoices are only ever appended through a customer save.
type Customer struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Version   int                `json:"__v" bson:"__v"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	UserName  string             `json:"userName" bson:"userName"`
	Invoices  []Invoice          `json:"invoices" bson:"invoices"`
}
