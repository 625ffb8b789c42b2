package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv carga las variables de entorno desde el archivo .env
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar .env, se usan las variables de entorno del sistema: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault devuelve la variable de entorno o el valor por defecto
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UpstreamBaseURL devuelve la URL base del backend de hotel
func UpstreamBaseURL() string {
	return GetEnvDefault("UPSTREAM_API_URL", "http://localhost:5000/api")
}

// RefreshSpec devuelve la cadencia de refresco del snapshot (formato cron)
func RefreshSpec() string {
	return GetEnvDefault("REFRESH_INTERVAL", "@every 30s")
}

// SnapshotTTL devuelve el vencimiento del snapshot cacheado en redis
func SnapshotTTL() time.Duration {
	minutes, err := strconv.Atoi(GetEnvDefault("SNAPSHOT_TTL_MINUTES", "60"))
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
