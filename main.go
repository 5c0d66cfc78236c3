package main

import (
	"context"
	"fmt"
	"time"

	"lafaek-backend/config"
	"lafaek-backend/database"
	"lafaek-backend/internal/api/uploads"
	routes "lafaek-backend/internal/app/http"
	"lafaek-backend/internal/media"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	presigner, err := media.NewPresigner(context.Background(), config.AWS_REGION, config.S3_BUCKET, config.MEDIA_ORIGIN)
	if err != nil {
		// Uploads degrade to 503; everything else still serves.
		fmt.Println("⚠️ S3 presigner unavailable:", err)
	} else {
		uploads.Init(presigner)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
