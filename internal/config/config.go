// Package config assembles runtime settings for the GestorVerde CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, environment (optionally via a .env file), a JSON config
// file, command-line flags.
package config

import "time"

// UploadBackend selects the asset-upload implementation.
type UploadBackend string

const (
	UploadBackendAsset UploadBackend = "asset"
	UploadBackendS3    UploadBackend = "s3"
)

// Endpoints holds the backend route templates. Paths containing ":id" are
// expanded by the API client.
type Endpoints struct {
	SignIn        string `json:"sign_in"`
	SignUp        string `json:"sign_up"`
	DeleteAccount string `json:"delete_account"`
	TerrainAll    string `json:"terrain_all"`
	TerrainMy     string `json:"terrain_my"`
	TerrainByID   string `json:"terrain_by_id"`
	TerrainCreate string `json:"terrain_create"`
	TerrainUpdate string `json:"terrain_update"`
	TerrainDelete string `json:"terrain_delete"`
	SeedTypes     string `json:"seed_types"`
	Crops         string `json:"crops"`
	CropByID      string `json:"crop_by_id"`
}

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the backend base, e.g. "http://localhost:8080/api/v1".
	APIBaseURL string

	Endpoints Endpoints

	// RequestTimeout bounds every single API round trip.
	RequestTimeout time.Duration

	// PageSize is the number of terrains requested per list page.
	PageSize int

	// TokenDBPath is the sqlite file holding the persisted bearer token.
	TokenDBPath string

	// Upload settings. Backend "asset" posts multipart form data to
	// UploadURL with UploadPreset; backend "s3" puts objects into S3Bucket.
	UploadBackend UploadBackend
	UploadURL     string
	UploadPreset  string
	S3Bucket      string
	S3Region      string
	S3BaseURL     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1"
	c.Endpoints = Endpoints{
		SignIn:        "/auth/sign-in",
		SignUp:        "/auth/sign-up",
		DeleteAccount: "/auth/account",
		TerrainAll:    "/terrain/all",
		TerrainMy:     "/terrain/my",
		TerrainByID:   "/terrain/:id",
		TerrainCreate: "/terrain/crud/create",
		TerrainUpdate: "/terrain/crud/update/:id",
		TerrainDelete: "/terrain/crud/delete/:id",
		SeedTypes:     "/seed-types",
		Crops:         "/crops",
		CropByID:      "/crops/:id",
	}
	c.RequestTimeout = 12 * time.Second
	c.PageSize = 6
	c.TokenDBPath = "gestorverde.db"
	c.UploadBackend = UploadBackendAsset
	c.UploadURL = ""
	c.UploadPreset = ""
	c.S3Bucket = ""
	c.S3Region = ""
	c.S3BaseURL = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
