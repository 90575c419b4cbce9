package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu groups purchasable items under a single category. Menu documents are
// created implicitly the first time an item is added for a category.
type Menu struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category string             `bson:"category" json:"category"`
	Items    []Item             `bson:"items" json:"items"`
}

// Item is embedded in its parent Menu and has no identity outside it.
// Price is a display string and is never parsed as a number.
type Item struct {
	Name     string `bson:"name" json:"name"`
	Price    string `bson:"price" json:"price"`
	Image    string `bson:"image" json:"image"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// CategorySummary is the projection returned by the categories listing:
// category names with item names only.
type CategorySummary struct {
	Category string     `bson:"category" json:"category"`
	Items    []ItemName `bson:"items" json:"items"`
}

type ItemName struct {
	Name string `bson:"name" json:"name"`
}

type AddItemRequest struct {
	Category string `json:"category" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Category    string `json:"category" validate:"required"`
	ItemName    string `json:"itemName" validate:"required"`
	NewQuantity *int   `json:"newQuantity" validate:"required"`
}
