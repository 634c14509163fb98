package main

import (
	"log"
	"net/http"
	"os"

	"hotel-booking/config"
	"hotel-booking/jobs"
	"hotel-booking/models"
	"hotel-booking/routes"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}, &models.Invoice{})
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c := config.InitApp()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	migrate(db)

	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Warning: không kết nối được Redis, chạy không cache: %v", err)
		rdb = nil
	}

	cld, err := config.ConnectCloudinary()
	if err != nil {
		log.Fatalf("Failed to connect to Cloudinary: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	dispatcher := notification.NewService(notification.NewSMTPMailer(), m, appLogger)

	if err := jobs.InitCronJobs(c, db); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.Deps{
		DB:            db,
		Redis:         rdb,
		Cloudinary:    cld,
		Dispatcher:    dispatcher,
		Logger:        appLogger,
		PaymentSecret: config.GetEnv("PAYMENT_SECRET"),
	})

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
