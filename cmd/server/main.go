package main

import (
	"os"
	"strings"

	"restaurant_backend/internal/database"
	"restaurant_backend/internal/router"
	"restaurant_backend/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Missing .env is fine; real deployments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on environment variables")
	}

	utils.InitLogger()
	utils.SetJWTSecret(os.Getenv("JWT_SECRET"))

	dbCfg := database.Config{
		Host:       utils.Getenv("DB_HOST", "localhost"),
		Port:       utils.Getenv("DB_PORT", "5432"),
		User:       utils.Getenv("DB_USER", "postgres"),
		Password:   utils.Getenv("DB_PASSWORD", "postgres"),
		Name:       utils.Getenv("DB_NAME", "restaurant"),
		SSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
		SchemaPath: utils.Getenv("DB_SCHEMA_PATH", ""),
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()
	log.Info().Str("host", dbCfg.Host).Str("database", dbCfg.Name).Msg("Database connection established")

	uploadDir := utils.Getenv("UPLOAD_DIR", "./uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", uploadDir).Msg("Failed to create upload directory")
	}

	routerCfg := router.Config{
		AllowedOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		UploadDir:      uploadDir,
	}

	r := router.SetupRouter(db, routerCfg)

	port := utils.Getenv("PORT", "8080")
	log.Info().Str("port", port).Msg("Starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
