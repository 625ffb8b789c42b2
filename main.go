package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"hotel-admin/config"
	"hotel-admin/jobs"
	"hotel-admin/routes"
	"hotel-admin/services"
	"hotel-admin/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	snapshotService := services.NewSnapshotService(services.SnapshotServiceOptions{
		BaseURL: config.UpstreamBaseURL(),
		Redis:   config.RedisClient,
		TTL:     config.SnapshotTTL(),
		Logger:  appLogger,
	})
	gridService := services.NewGridService(appLogger)

	// Primer snapshot antes de aceptar tráfico; si el backend está caído
	// se sigue con el cache de redis o con el snapshot vacío
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := snapshotService.Refresh(ctx); err != nil {
		appLogger.Warn("no se pudo cargar el snapshot inicial: %v", err)
	}
	cancel()

	jobs.SetSnapshotRefresher(snapshotService)
	jobs.SetOccupancySummarizer(gridService)
	if err := jobs.InitCronJobs(c, m, config.RefreshSpec()); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, snapshotService, gridService, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
