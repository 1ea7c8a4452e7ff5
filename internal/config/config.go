package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI        string
	DBName          string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// AdminMasterPIN is the shared elevation secret. A single-operator
	// convenience, not a real trust boundary.
	AdminMasterPIN string

	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:               getEnvOrDefault("MONGO_URI", ""),
		DBName:                 getEnvOrDefault("DB_NAME", "kazistore"),
		JWTSecret:              getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:         getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		RefreshTokenTTL:        getDurationEnv("REFRESH_TOKEN_TTL", 7, 24*time.Hour),
		AdminMasterPIN:         getEnvOrDefault("ADMIN_MASTER_PIN", "2025"),
		CloudinaryCloudName:    getEnvOrDefault("CLOUDINARY_CLOUD_NAME", "kazi-retail"),
		CloudinaryUploadPreset: getEnvOrDefault("CLOUDINARY_UPLOAD_PRESET", "ml_default"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
