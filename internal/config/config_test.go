package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api/v1", c.APIBaseURL)
	assert.Equal(t, 12*time.Second, c.RequestTimeout)
	assert.Equal(t, 6, c.PageSize)
	assert.Equal(t, "/auth/sign-in", c.Endpoints.SignIn)
	assert.Equal(t, "/terrain/crud/update/:id", c.Endpoints.TerrainUpdate)
	assert.Equal(t, UploadBackendAsset, c.UploadBackend)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("GV_API_BASE_URL", "https://api.gestorverde.cl/v1")
	t.Setenv("GV_PAGE_SIZE", "12")
	t.Setenv("GV_REQUEST_TIMEOUT", "5s")
	t.Setenv("GV_UPLOAD_BACKEND", "s3")
	t.Setenv("GV_S3_BUCKET", "gv-photos")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.gestorverde.cl/v1", c.APIBaseURL)
	assert.Equal(t, 12, c.PageSize)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, UploadBackendS3, c.UploadBackend)
	assert.Equal(t, "gv-photos", c.S3Bucket)
}

func TestParseEnv_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("GV_PAGE_SIZE", "zero")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 6, c.PageSize)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-s", "https://api.example.org", "-t", "3", "-p", "9"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://api.example.org", c.APIBaseURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, 9, c.PageSize)
}

func TestParseJson(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{
		"api_base_url": "https://staging.gestorverde.cl/api",
		"request_timeout_sec": 20,
		"endpoints": {"sign_in": "/v2/auth/login"}
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", f.Name()}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://staging.gestorverde.cl/api", c.APIBaseURL)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
	assert.Equal(t, "/v2/auth/login", c.Endpoints.SignIn)
	// untouched fields keep their defaults
	assert.Equal(t, "/auth/sign-up", c.Endpoints.SignUp)
	assert.Equal(t, 6, c.PageSize)
}
