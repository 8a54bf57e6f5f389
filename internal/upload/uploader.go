// Package upload resolves local image files into permanent URLs before a
// terrain or crop submission. An upload failure aborts the enclosing
// submission; no entity request is sent without a hosted image.
package upload

import (
	"context"
	"errors"
)

// ErrUpload wraps every uploader failure so the workflow can recognize the
// phase that failed.
var ErrUpload = errors.New("image upload failed")

// Uploader stores a local file on an asset host and returns its permanent
// URL.
type Uploader interface {
	Upload(ctx context.Context, path string) (string, error)
}
