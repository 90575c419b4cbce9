// Package store owns persistence for orders and menus. Implementations are
// handed a document collection by the caller; nothing in this package opens
// connections itself.
package store

import (
	"context"
	"errors"

	"scoop-shop-backend/models"
)

var (
	// ErrNotFound reports that no document matched the lookup.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID reports a lookup key that is not a valid object id.
	ErrInvalidID = errors.New("invalid object id")
)

type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	DeleteByID(ctx context.Context, id string) (models.Order, error)
	DeleteByPhone(ctx context.Context, phone string) (models.Order, error)
}

type MenuStore interface {
	ListCategories(ctx context.Context) ([]models.CategorySummary, error)
	AddItem(ctx context.Context, category string, item models.Item) (models.Menu, error)
	UpdateItemQuantity(ctx context.Context, category, itemName string, quantity int) (models.Menu, error)
}
