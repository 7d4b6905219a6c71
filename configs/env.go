package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, reading configuration from environment")
		}
	})
}

func EnvMongoURI() string {
	loadEnv()
	return os.Getenv("MONGOURI")
}

func EnvJwtSecret() string {
	loadEnv()
	return os.Getenv("JWT_SECRET")
}

func EnvRazorpayKeyId() string {
	loadEnv()
	return os.Getenv("RAZORPAY_KEY_ID")
}

func EnvRazorpayKeySecret() string {
	loadEnv()
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

func EnvAdminEmail() string {
	loadEnv()
	return os.Getenv("ADMIN_EMAIL")
}

func EnvAdminPassword() string {
	loadEnv()
	return os.Getenv("ADMIN_PASSWORD")
}

func EnvPort() string {
	loadEnv()
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return port
}
