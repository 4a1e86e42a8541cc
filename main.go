package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/config"
	"github.com/BimsaraU/SkyNest-sub000/jobs"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/routes"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func migrateTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RoomType{},
		&models.Room{},
		&models.Service{},
		&models.Booking{},
		&models.ServiceUsage{},
		&models.Payment{},
	)
}

func main() {
	config.LoadEnv()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrateTables(db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	rdb, err := config.ConnectRedis(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	cld, err := config.ConnectCloudinary()
	if err != nil {
		log.Fatalf("Failed to connect to Cloudinary: %v", err)
	}

	router := config.InitApp()

	cronRunner := cron.New()
	if err := jobs.InitCronJobs(cronRunner, rdb); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, db, rdb, cld)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnvDefault("PORT", "8083")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Println("Server starting on port " + port + "...")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Chờ tín hiệu dừng rồi shutdown có trật tự: ngừng nhận request,
	// chờ các transaction đang chạy xong, đóng pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cronRunner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := config.CloseDB(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	if err := rdb.Close(); err != nil {
		log.Printf("Failed to close Redis client: %v", err)
	}

	log.Println("Server exited")
}
