// Package workflow orchestrates validated terrain and crop submissions:
// local validation first, then the optional image upload, then the
// persistence call. A failure at any phase stops the chain; the caller's
// form is never mutated, so a failed submit can be retried as typed.
package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/gestorverde/gestorverde/internal/api"
	"github.com/gestorverde/gestorverde/internal/logging"
	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/gestorverde/gestorverde/internal/session"
	"github.com/gestorverde/gestorverde/internal/upload"
)

// Mode selects between creating a new entity and updating an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

var (
	// ErrNotAuthenticated: the submission needs an identity from the
	// session token and none could be decoded.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDeclined: the user did not confirm a delete; nothing was sent.
	ErrDeclined = errors.New("delete not confirmed")
)

// IdentitySource yields the authenticated user's decoded token claims.
// Implemented by *session.Store.
type IdentitySource interface {
	Identity() (session.Identity, bool)
}

// TerrainService drives terrain create/update/delete against the backend.
type TerrainService struct {
	api      api.Client
	uploader upload.Uploader
	identity IdentitySource
	log      logging.Logger
	now      func() time.Time
}

func NewTerrainService(client api.Client, uploader upload.Uploader, identity IdentitySource, log logging.Logger) *TerrainService {
	return &TerrainService{api: client, uploader: uploader, identity: identity, log: log, now: time.Now}
}

// Submit validates the form, resolves the image, merges the caller's
// identity and issues the create or update request. id is only used in
// ModeUpdate. The returned entity is the server's, carrying the assigned id;
// callers refresh their lists from the backend rather than splicing it in.
func (s *TerrainService) Submit(ctx context.Context, form *models.TerrainForm, mode Mode, id int64) (*models.Terrain, error) {
	if err := form.Validate(s.now()); err != nil {
		return nil, err
	}

	ident, ok := s.identity.Identity()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	photoURL, err := s.resolvePhoto(ctx, form.PhotoFile, form.PhotoURL)
	if err != nil {
		return nil, err
	}

	payload, err := form.Payload(photoURL, ident.Email, ident.FullName())
	if err != nil {
		return nil, err
	}

	var result *models.Terrain
	switch mode {
	case ModeUpdate:
		result, err = s.api.UpdateTerrain(ctx, id, payload)
	default:
		result, err = s.api.CreateTerrain(ctx, payload)
	}
	if err != nil {
		s.log.Error(ctx, "terrain submission failed", "mode", string(mode), "error", err)
		return nil, err
	}

	s.log.Info(ctx, "terrain submitted", "mode", string(mode), "id", result.ID)
	return result, nil
}

// Delete removes a terrain after explicit confirmation. When confirm returns
// false no request is issued and ErrDeclined is returned.
func (s *TerrainService) Delete(ctx context.Context, id int64, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrDeclined
	}
	if err := s.api.DeleteTerrain(ctx, id); err != nil {
		s.log.Error(ctx, "terrain delete failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "terrain deleted", "id", id)
	return nil
}

// resolvePhoto uploads the local file when one is given, otherwise passes
// the already-hosted URL through. An upload failure aborts the submission;
// the backend is never contacted with a half-done payload.
func (s *TerrainService) resolvePhoto(ctx context.Context, file, url string) (string, error) {
	if file == "" {
		return url, nil
	}
	uploaded, err := s.uploader.Upload(ctx, file)
	if err != nil {
		s.log.Error(ctx, "image upload failed", "file", file, "error", err)
		return "", err
	}
	return uploaded, nil
}
