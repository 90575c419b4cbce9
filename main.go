package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"scoop-shop-backend/config"
	"scoop-shop-backend/database"
	"scoop-shop-backend/health"
	"scoop-shop-backend/metrics"
	"scoop-shop-backend/routes"
	"scoop-shop-backend/store"
)

func corsConfig(clientURL string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type"}

	if clientURL == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{clientURL}
	cfg.AllowCredentials = true
	return cfg
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err := database.Connect(connectCtx, cfg.MongoURI)
	if err != nil {
		cancel()
		log.WithError(err).Fatal("invalid mongodb configuration")
	}
	// An unreachable server is logged but does not stop the process; requests
	// fail with 500 until the store comes back.
	if err := database.Ping(connectCtx, client); err != nil {
		log.WithError(err).Error("mongodb not reachable at startup")
	} else {
		log.Info("connected to mongodb")
	}
	cancel()

	orders := store.NewMongoOrderStore(database.OpenCollection(client, cfg.Database, "orders"))
	menus := store.NewMongoMenuStore(database.OpenCollection(client, cfg.Database, "menus"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware(), cors.New(corsConfig(cfg.ClientURL)))

	router.GET("/api/test", health.Liveness())
	router.GET("/health", health.Readiness(client))
	router.GET("/metrics", metrics.Handler())
	routes.OrderRoutes(router, orders)
	routes.MenuRoutes(router, menus)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()
	log.WithField("port", cfg.Port).Info("server running")

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	if err := database.Disconnect(shutdownCtx, client); err != nil {
		log.WithError(err).Error("closing mongodb connection failed")
	} else {
		log.Info("mongodb connection closed")
	}
}
