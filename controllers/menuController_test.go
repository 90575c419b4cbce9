package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoop-shop-backend/models"
	"scoop-shop-backend/routes"
	"scoop-shop-backend/store/memory"
)

func newMenuRouter(menus *memory.MenuStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.MenuRoutes(router, menus)
	return router
}

func TestAddMenuItem(t *testing.T) {
	menus := memory.NewMenuStore()
	router := newMenuRouter(menus)

	rec := doJSON(t, router, http.MethodPost, "/api/menu/add-item", gin.H{
		"category": "Ice Cream",
		"name":     "Vanilla",
		"price":    "3.50",
		"image":    "/img/vanilla.png",
		"quantity": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string      `json:"message"`
		Menu    models.Menu `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ice Cream", resp.Menu.Category)
	require.Len(t, resp.Menu.Items, 1)
	assert.Equal(t, "3.50", resp.Menu.Items[0].Price)
}

func TestAddMenuItemAppendsToExistingCategory(t *testing.T) {
	menus := memory.NewMenuStore()
	router := newMenuRouter(menus)

	first := doJSON(t, router, http.MethodPost, "/api/menu/add-item", gin.H{
		"category": "Ice Cream", "name": "Vanilla", "price": "3.50", "quantity": 10,
	})
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/menu/add-item", gin.H{
		"category": "Ice Cream", "name": "Mango", "price": "4.00", "quantity": 5,
	})
	require.Equal(t, http.StatusOK, second.Code)

	var resp struct {
		Menu models.Menu `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	require.Len(t, resp.Menu.Items, 2)
	assert.Equal(t, "Vanilla", resp.Menu.Items[0].Name)
	assert.Equal(t, "Mango", resp.Menu.Items[1].Name)
}

func TestAddMenuItemMissingFields(t *testing.T) {
	router := newMenuRouter(memory.NewMenuStore())

	rec := doJSON(t, router, http.MethodPost, "/api/menu/add-item", gin.H{"name": "Vanilla"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItemQuantity(t *testing.T) {
	menus := memory.NewMenuStore()
	router := newMenuRouter(menus)

	_, err := menus.AddItem(context.Background(), "Ice Cream", models.Item{Name: "Vanilla", Price: "3.50", Quantity: 10})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPut, "/api/menu/update-quantity", gin.H{
		"category":    "Ice Cream",
		"itemName":    "Vanilla",
		"newQuantity": 5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string      `json:"message"`
		Menu    models.Menu `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Menu.Items, 1)
	assert.Equal(t, 5, resp.Menu.Items[0].Quantity)
	assert.Equal(t, "3.50", resp.Menu.Items[0].Price)
}

func TestUpdateItemQuantityMissingFields(t *testing.T) {
	bodies := map[string]gin.H{
		"no category":    {"itemName": "Vanilla", "newQuantity": 5},
		"no itemName":    {"category": "Ice Cream", "newQuantity": 5},
		"no newQuantity": {"category": "Ice Cream", "itemName": "Vanilla"},
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			router := newMenuRouter(memory.NewMenuStore())

			rec := doJSON(t, router, http.MethodPut, "/api/menu/update-quantity", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateItemQuantityUnknownCategory(t *testing.T) {
	router := newMenuRouter(memory.NewMenuStore())

	rec := doJSON(t, router, http.MethodPut, "/api/menu/update-quantity", gin.H{
		"category":    "Ice Cream",
		"itemName":    "Vanilla",
		"newQuantity": 5,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCategories(t *testing.T) {
	menus := memory.NewMenuStore()
	router := newMenuRouter(menus)

	_, err := menus.AddItem(context.Background(), "Ice Cream", models.Item{Name: "Vanilla", Price: "3.50", Quantity: 10})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/menu/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []models.CategorySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Ice Cream", categories[0].Category)
	require.Len(t, categories[0].Items, 1)
	assert.Equal(t, "Vanilla", categories[0].Items[0].Name)
}
