// Package memory provides in-memory store implementations with the same
// semantics as the Mongo-backed ones. They back the handler tests and allow
// running the service without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scoop-shop-backend/models"
	"scoop-shop-backend/store"
)

type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Create(_ context.Context, order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = primitive.NewObjectID()
	order.Date = time.Now().UTC()
	s.orders = append(s.orders, order)
	return order, nil
}

func (s *OrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *OrderStore) DeleteByID(_ context.Context, id string) (models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, store.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.ID == objectID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return order, nil
		}
	}
	return models.Order{}, store.ErrNotFound
}

// DeleteByPhone removes the first matching order in insertion order.
func (s *OrderStore) DeleteByPhone(_ context.Context, phone string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.Phone == phone {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return order, nil
		}
	}
	return models.Order{}, store.ErrNotFound
}
