package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scoop-shop-backend/models"
	"scoop-shop-backend/store"
)

type MenuStore struct {
	mu    sync.Mutex
	menus []models.Menu
}

func NewMenuStore() *MenuStore {
	return &MenuStore{}
}

func (s *MenuStore) ListCategories(_ context.Context) ([]models.CategorySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []models.CategorySummary{}
	for _, menu := range s.menus {
		summary := models.CategorySummary{Category: menu.Category, Items: []models.ItemName{}}
		for _, item := range menu.Items {
			summary.Items = append(summary.Items, models.ItemName{Name: item.Name})
		}
		categories = append(categories, summary)
	}
	return categories, nil
}

func (s *MenuStore) AddItem(_ context.Context, category string, item models.Item) (models.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menus {
		if s.menus[i].Category == category {
			s.menus[i].Items = append(s.menus[i].Items, item)
			return copyMenu(s.menus[i]), nil
		}
	}

	menu := models.Menu{
		ID:       primitive.NewObjectID(),
		Category: category,
		Items:    []models.Item{item},
	}
	s.menus = append(s.menus, menu)
	return copyMenu(menu), nil
}

func (s *MenuStore) UpdateItemQuantity(_ context.Context, category, itemName string, quantity int) (models.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menus {
		if s.menus[i].Category != category {
			continue
		}
		for j := range s.menus[i].Items {
			if s.menus[i].Items[j].Name == itemName {
				s.menus[i].Items[j].Quantity = quantity
				return copyMenu(s.menus[i]), nil
			}
		}
	}
	return models.Menu{}, store.ErrNotFound
}

func copyMenu(menu models.Menu) models.Menu {
	out := menu
	out.Items = make([]models.Item, len(menu.Items))
	copy(out.Items, menu.Items)
	return out
}
