package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	AWS_REGION   string
	S3_BUCKET    string
	MEDIA_ORIGIN string

	CORS_ORIGIN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	AWS_REGION = getEnv("AWS_REGION", "ap-southeast-2")
	S3_BUCKET = getEnv("S3_BUCKET", "lafaek-media")
	MEDIA_ORIGIN = getEnv("MEDIA_ORIGIN", "https://lafaek-media.s3.ap-southeast-2.amazonaws.com")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
