package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gestorverde/gestorverde/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in seconds. Zero values leave the current Config untouched.
type JsonConfig struct {
	APIBaseURL        string     `json:"api_base_url"`
	Endpoints         *Endpoints `json:"endpoints"`
	RequestTimeoutSec int        `json:"request_timeout_sec"`
	PageSize          int        `json:"page_size"`
	TokenDBPath       string     `json:"token_db_path"`
	UploadBackend     string     `json:"upload_backend"`
	UploadURL         string     `json:"upload_url"`
	UploadPreset      string     `json:"upload_preset"`
	S3Bucket          string     `json:"s3_bucket"`
	S3Region          string     `json:"s3_region"`
	S3BaseURL         string     `json:"s3_base_url"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic (startup misconfiguration).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.Endpoints != nil {
		overlayEndpoints(&cfg.Endpoints, jc.Endpoints)
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.UploadBackend != "" {
		cfg.UploadBackend = UploadBackend(jc.UploadBackend)
	}
	if jc.UploadURL != "" {
		cfg.UploadURL = jc.UploadURL
	}
	if jc.UploadPreset != "" {
		cfg.UploadPreset = jc.UploadPreset
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseURL != "" {
		cfg.S3BaseURL = jc.S3BaseURL
	}
}

func overlayEndpoints(dst *Endpoints, src *Endpoints) {
	if src.SignIn != "" {
		dst.SignIn = src.SignIn
	}
	if src.SignUp != "" {
		dst.SignUp = src.SignUp
	}
	if src.DeleteAccount != "" {
		dst.DeleteAccount = src.DeleteAccount
	}
	if src.TerrainAll != "" {
		dst.TerrainAll = src.TerrainAll
	}
	if src.TerrainMy != "" {
		dst.TerrainMy = src.TerrainMy
	}
	if src.TerrainByID != "" {
		dst.TerrainByID = src.TerrainByID
	}
	if src.TerrainCreate != "" {
		dst.TerrainCreate = src.TerrainCreate
	}
	if src.TerrainUpdate != "" {
		dst.TerrainUpdate = src.TerrainUpdate
	}
	if src.TerrainDelete != "" {
		dst.TerrainDelete = src.TerrainDelete
	}
	if src.SeedTypes != "" {
		dst.SeedTypes = src.SeedTypes
	}
	if src.Crops != "" {
		dst.Crops = src.Crops
	}
	if src.CropByID != "" {
		dst.CropByID = src.CropByID
	}
}
