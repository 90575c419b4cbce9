// Package health exposes the plain-text liveness probe the storefront polls
// and a readiness endpoint that reports store connectivity.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const pingTimeout = 2 * time.Second

// Liveness answers the frontend's availability check.
func Liveness() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "API is working!")
	}
}

type check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Readiness reports overall status plus a mongo ping. A degraded store shows
// up in the body; the endpoint itself still answers 200 so pollers can read
// the detail.
func Readiness(client *mongo.Client) gin.HandlerFunc {
	startTime := time.Now()

	return func(c *gin.Context) {
		status := "healthy"
		mongoCheck := check{Status: "healthy"}

		if client == nil {
			status = "unhealthy"
			mongoCheck = check{Status: "unhealthy", Message: "no client configured"}
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				status = "unhealthy"
				mongoCheck = check{Status: "unhealthy", Message: err.Error()}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":         status,
			"timestamp":      time.Now().UTC(),
			"uptime_seconds": int64(time.Since(startTime).Seconds()),
			"checks":         gin.H{"mongo": mongoCheck},
		})
	}
}
