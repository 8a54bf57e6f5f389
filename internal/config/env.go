package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first if present; real
// environment variables win over .env entries (godotenv does not override).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	get := func(k string) string { return os.Getenv(k) }

	if v := get("GV_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := get("GV_TOKEN_DB"); v != "" {
		cfg.TokenDBPath = v
	}
	if v := get("GV_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := get("GV_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}

	if v := get("GV_UPLOAD_BACKEND"); v != "" {
		cfg.UploadBackend = UploadBackend(v)
	}
	if v := get("GV_UPLOAD_URL"); v != "" {
		cfg.UploadURL = v
	}
	if v := get("GV_UPLOAD_PRESET"); v != "" {
		cfg.UploadPreset = v
	}
	if v := get("GV_S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := get("GV_S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := get("GV_S3_BASE_URL"); v != "" {
		cfg.S3BaseURL = v
	}
}
