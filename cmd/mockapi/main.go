package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Happid/kepegawaian/internal/bootstrap"
	"github.com/Happid/kepegawaian/internal/mockapi"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	seedEmail := os.Getenv("SEED_EMAIL")
	if seedEmail == "" {
		seedEmail = "admin@mail.com"
	}
	seedPassword := os.Getenv("SEED_PASSWORD")
	if seedPassword == "" {
		seedPassword = "rahasia123"
	}

	router, _, err := mockapi.NewRouter(mockapi.Config{
		Secret:       secret,
		SeedEmail:    seedEmail,
		SeedPassword: seedPassword,
	}, logger)
	if err != nil {
		logger.Fatal("build mockapi failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}
