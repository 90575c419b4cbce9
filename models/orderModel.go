package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a single customer purchase request. Orders are only ever created,
// read or deleted; there is no update operation and Date never changes after
// creation.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Consumer string             `bson:"consumer" json:"consumer"`
	Flavour  string             `bson:"flavour" json:"flavour"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Phone    string             `bson:"phone" json:"phone"`
	Info     string             `bson:"info,omitempty" json:"info,omitempty"`
	Date     time.Time          `bson:"date" json:"date"`
}

// PlaceOrderRequest carries the order-placement body. Quantity is required and
// non-zero; an absent or zero quantity fails validation alike.
type PlaceOrderRequest struct {
	Consumer string `json:"consumer" validate:"required"`
	Flavour  string `json:"flavour" validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Info     string `json:"info"`
}

type DeleteByPhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}
