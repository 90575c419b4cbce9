package routes

import (
	"github.com/gin-gonic/gin"

	"scoop-shop-backend/controllers"
	"scoop-shop-backend/store"
)

func OrderRoutes(incomingRoutes *gin.Engine, orders store.OrderStore) {
	incomingRoutes.POST("/order", controllers.PlaceOrder(orders))
	incomingRoutes.GET("/api/orders", controllers.GetOrders(orders))
	incomingRoutes.DELETE("/order/:id", controllers.DeleteOrder(orders))
	incomingRoutes.DELETE("/api/orders", controllers.DeleteOrderByPhone(orders))
}
