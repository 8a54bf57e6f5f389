package workflow

import (
	"context"
	"time"

	"github.com/gestorverde/gestorverde/internal/api"
	"github.com/gestorverde/gestorverde/internal/logging"
	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/gestorverde/gestorverde/internal/upload"
)

// CropService drives crop create/update/delete. Crops inherit ownership
// from their terrain, so no identity merge happens here.
type CropService struct {
	api      api.Client
	uploader upload.Uploader
	log      logging.Logger
	now      func() time.Time
}

func NewCropService(client api.Client, uploader upload.Uploader, log logging.Logger) *CropService {
	return &CropService{api: client, uploader: uploader, log: log, now: time.Now}
}

// Submit validates the form, resolves the image and creates (or, in
// ModeUpdate, replaces) the crop under terrainID.
func (s *CropService) Submit(ctx context.Context, form *models.CropForm, mode Mode, terrainID, cropID int64) (*models.Crop, error) {
	if err := form.Validate(s.now()); err != nil {
		return nil, err
	}

	photoURL := form.PhotoURL
	if form.PhotoFile != "" {
		uploaded, err := s.uploader.Upload(ctx, form.PhotoFile)
		if err != nil {
			s.log.Error(ctx, "image upload failed", "file", form.PhotoFile, "error", err)
			return nil, err
		}
		photoURL = uploaded
	}

	payload, err := form.Payload(terrainID, photoURL)
	if err != nil {
		return nil, err
	}

	var result *models.Crop
	switch mode {
	case ModeUpdate:
		result, err = s.api.UpdateCrop(ctx, cropID, payload)
	default:
		result, err = s.api.CreateCrop(ctx, payload)
	}
	if err != nil {
		s.log.Error(ctx, "crop submission failed", "mode", string(mode), "terrainId", terrainID, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "crop submitted", "mode", string(mode), "id", result.ID)
	return result, nil
}

// Delete removes a crop after explicit confirmation, mirroring
// TerrainService.Delete.
func (s *CropService) Delete(ctx context.Context, id int64, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrDeclined
	}
	if err := s.api.DeleteCrop(ctx, id); err != nil {
		s.log.Error(ctx, "crop delete failed", "id", id, "error", err)
		return err
	}
	s.log.Info(ctx, "crop deleted", "id", id)
	return nil
}

// SeedTypes returns the catalog the crop form chooses from.
func (s *CropService) SeedTypes(ctx context.Context) ([]models.SeedType, error) {
	return s.api.SeedTypes(ctx)
}
