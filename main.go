package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"streetlens-admin/config"
	"streetlens-admin/live"
	"streetlens-admin/routes"
	"streetlens-admin/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}

	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(corsConfig))

	// live snapshot fan-out: one store subscription feeds every dashboard
	hub := live.NewHub()
	go hub.Run()

	issueStore := store.NewIssueStore(config.GetCollection("issues"))
	cancel, err := issueStore.Subscribe(context.Background(), hub.Broadcast)
	if err != nil {
		log.Printf("Live issue stream unavailable: %v", err)
	} else {
		defer cancel()
	}

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)
	routes.CitizenRoutes(r)
	routes.LiveRoutes(r, hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
