package models

import (
	"strings"
	"time"
)

// SeedType is a backend-owned catalog entity; the client only reads it.
type SeedType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Crop is a planting instance of a seed type on a terrain. Ownership follows
// the parent terrain via TerrainID.
type Crop struct {
	ID          int64    `json:"id"`
	TerrainID   int64    `json:"terrainId"`
	SeedType    SeedType `json:"seedType"`
	Area        float64  `json:"area"`
	Photo       string   `json:"photo"`
	HarvestDate string   `json:"harvestDate"`
	ForSale     bool     `json:"forSale"`
}

// CropForm carries raw user input for a crop create or update.
type CropForm struct {
	SeedTypeID  int64
	Area        string
	PhotoFile   string
	PhotoURL    string
	HarvestDate string
	ForSale     bool
}

// Validate checks every field and returns field-scoped errors, or nil.
// Crops require a harvest date, and it must not precede the current date.
func (f *CropForm) Validate(now time.Time) error {
	var errs ValidationErrors

	if f.SeedTypeID <= 0 {
		errs = append(errs, FieldError{Field: "seedTypeId", Message: "Tipo de cultivo es requerido"})
	}
	if _, err := ParseArea(f.Area); err != nil {
		errs = append(errs, FieldError{Field: "area", Message: err.Error()})
	}
	if f.PhotoFile == "" && strings.TrimSpace(f.PhotoURL) == "" {
		errs = append(errs, FieldError{Field: "photo", Message: "La imagen es requerida"})
	}
	if f.HarvestDate == "" {
		errs = append(errs, FieldError{Field: "harvestDate", Message: "Este campo es obligatorio"})
	} else if d, err := ParseISODate(f.HarvestDate); err != nil {
		errs = append(errs, FieldError{Field: "harvestDate", Message: "Fecha inválida, use AAAA-MM-DD"})
	} else if d.Before(dateOnly(now)) {
		errs = append(errs, FieldError{Field: "harvestDate", Message: "La fecha de cosecha no puede ser un día anterior a la fecha actual"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CropPayload is the wire object for crop creation; the backend resolves
// SeedTypeID against its catalog.
type CropPayload struct {
	TerrainID   int64   `json:"terrainId"`
	SeedTypeID  int64   `json:"seedTypeId"`
	Area        float64 `json:"area"`
	Photo       string  `json:"photo"`
	HarvestDate string  `json:"harvestDate"`
	ForSale     bool    `json:"forSale"`
}

// Payload builds the wire object for a validated form.
func (f *CropForm) Payload(terrainID int64, photoURL string) (*CropPayload, error) {
	area, err := ParseArea(f.Area)
	if err != nil {
		return nil, err
	}
	return &CropPayload{
		TerrainID:   terrainID,
		SeedTypeID:  f.SeedTypeID,
		Area:        area,
		Photo:       photoURL,
		HarvestDate: strings.TrimSpace(f.HarvestDate),
		ForSale:     f.ForSale,
	}, nil
}
