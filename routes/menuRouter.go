package routes

import (
	"github.com/gin-gonic/gin"

	"scoop-shop-backend/controllers"
	"scoop-shop-backend/store"
)

func MenuRoutes(incomingRoutes *gin.Engine, menus store.MenuStore) {
	incomingRoutes.GET("/api/menu/categories", controllers.GetCategories(menus))
	incomingRoutes.POST("/api/menu/add-item", controllers.AddMenuItem(menus))
	incomingRoutes.PUT("/api/menu/update-quantity", controllers.UpdateItemQuantity(menus))
}
