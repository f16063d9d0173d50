package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	apiPortEnvKey   = "API_PORT"
	dbDriverEnvKey  = "DB_DRIVER"
	dbDSNEnvKey     = "DB_DSN"
	uploadDirEnvKey = "UPLOAD_DIR"
	staticDirEnvKey = "STATIC_DIR"
	maxUploadEnvKey = "MAX_UPLOAD_BYTES"
	logLevelEnvKey  = "LOG_LEVEL"

	defaultMaxUpload = 10 << 20
)

type App struct {
	Port           string
	DBDriver       string
	DBDSN          string
	UploadDir      string
	StaticDir      string
	MaxUploadBytes int64
	LogLevel       string
}

func NewApp() (App, error) {
	maxUpload := int64(defaultMaxUpload)
	if raw, ok := os.LookupEnv(maxUploadEnvKey); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return App{}, fmt.Errorf("invalid %s value %q", maxUploadEnvKey, raw)
		}
		maxUpload = parsed
	}

	return App{
		Port:           envOr(apiPortEnvKey, "8080"),
		DBDriver:       envOr(dbDriverEnvKey, "sqlite"),
		DBDSN:          envOr(dbDSNEnvKey, "nss_lens.db"),
		UploadDir:      envOr(uploadDirEnvKey, "uploads"),
		StaticDir:      envOr(staticDirEnvKey, "static"),
		MaxUploadBytes: maxUpload,
		LogLevel:       envOr(logLevelEnvKey, "info"),
	}, nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
