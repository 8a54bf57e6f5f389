package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// AssetHostUploader posts multipart form data (file + preset credentials) to
// an asset-hosting endpoint and reads back the secure URL.
type AssetHostUploader struct {
	uploadURL string
	preset    string
	timeout   time.Duration
	http      *http.Client
}

func NewAssetHostUploader(uploadURL, preset string, timeout time.Duration) *AssetHostUploader {
	return &AssetHostUploader{
		uploadURL: uploadURL,
		preset:    preset,
		timeout:   timeout,
		http:      &http.Client{},
	}
}

type assetResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (u *AssetHostUploader) Upload(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := mw.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: asset host returned %d", ErrUpload, resp.StatusCode)
	}

	var ar assetResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if ar.SecureURL != "" {
		return ar.SecureURL, nil
	}
	if ar.URL != "" {
		return ar.URL, nil
	}
	return "", fmt.Errorf("%w: response carried no url", ErrUpload)
}
