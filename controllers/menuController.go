package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"scoop-shop-backend/models"
	"scoop-shop-backend/store"
)

func GetCategories(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := menus.ListCategories(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("fetching categories failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func AddMenuItem(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		item := models.Item{
			Name:     req.Name,
			Price:    req.Price,
			Image:    req.Image,
			Quantity: req.Quantity,
		}

		menu, err := menus.AddItem(c.Request.Context(), req.Category, item)
		if err != nil {
			log.WithError(err).Error("adding menu item failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item added successfully", "menu": menu})
	}
}

func UpdateItemQuantity(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		menu, err := menus.UpdateItemQuantity(c.Request.Context(), req.Category, req.ItemName, *req.NewQuantity)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in the specified category"})
		case err != nil:
			log.WithError(err).Error("updating item quantity failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update quantity", "error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Quantity updated successfully", "menu": menu})
		}
	}
}
