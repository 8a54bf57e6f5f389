// Package models defines the GestorVerde domain entities and the form types
// the submission workflow validates before touching the network.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SoilType classifies a terrain's soil.
type SoilType string

const (
	SoilArenoso   SoilType = "Arenoso"
	SoilMixto     SoilType = "Mixto"
	SoilAcido     SoilType = "Ácido"
	SoilCalizo    SoilType = "Calizo"
	SoilSupresivo SoilType = "Supresivo"
)

// SoilTypes lists every valid soil type, in display order.
var SoilTypes = []SoilType{SoilArenoso, SoilMixto, SoilAcido, SoilCalizo, SoilSupresivo}

func (s SoilType) Valid() bool {
	for _, v := range SoilTypes {
		if s == v {
			return true
		}
	}
	return false
}

// MaxAreaHectares is the largest registrable terrain or crop area.
const MaxAreaHectares = 50

// Terrain is a registered land parcel. Email and FullName identify the owner
// and are derived from the session token, never typed by the user.
type Terrain struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Area     float64  `json:"area"`
	SoilType SoilType `json:"soilType"`
	Photo    string   `json:"photo"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	ForSale  bool     `json:"forSale"`
	Location string   `json:"location"`

	// HarvestDate is optional for a terrain; "" means none was announced.
	HarvestDate string `json:"harvestDate,omitempty"`

	Crops []Crop `json:"crops,omitempty"`
}

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Content       []T `json:"content"`
	PageNumber    int `json:"pageNumber"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}

// FieldError is a validation failure scoped to a single form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects field errors from a single Validate call.
// It is non-empty when returned as an error.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Has reports whether a field has a recorded error.
func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// ParseArea converts the user's area input (hectares) to a number, enforcing
// the positivity and upper-bound invariants. Used both at input time and
// again at submit time.
func ParseArea(s string) (float64, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("el área debe ser un número")
	}
	if a <= 0 {
		return 0, fmt.Errorf("el valor debe ser un número positivo")
	}
	if a > MaxAreaHectares {
		return 0, fmt.Errorf("el valor debe ser menor o igual a %d", MaxAreaHectares)
	}
	return a, nil
}

// ParseISODate parses a "YYYY-MM-DD" date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// dateOnly truncates t to midnight in its location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TerrainForm carries raw user input for a terrain create or update.
// Area stays a string until validation; ForSale is already a bool because
// conversion from the prompt answer happens at the input boundary.
//
// Exactly one of PhotoFile (a local path to upload) or PhotoURL (an already
// hosted image) should be set.
type TerrainForm struct {
	Name        string
	Area        string
	SoilType    string
	PhotoFile   string
	PhotoURL    string
	HarvestDate string
	ForSale     bool
	Location    string
}

// Validate checks every field and returns a ValidationErrors with one entry
// per failing field, or nil when the form is submittable. No network calls
// happen here; the workflow refuses to submit on any error.
func (f *TerrainForm) Validate(now time.Time) error {
	var errs ValidationErrors

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Nombre es requerido"})
	}
	if _, err := ParseArea(f.Area); err != nil {
		errs = append(errs, FieldError{Field: "area", Message: err.Error()})
	}
	if !SoilType(f.SoilType).Valid() {
		errs = append(errs, FieldError{Field: "soilType", Message: "Tipo de suelo inválido"})
	}
	if f.PhotoFile == "" && strings.TrimSpace(f.PhotoURL) == "" {
		errs = append(errs, FieldError{Field: "photo", Message: "La imagen es requerida"})
	}
	// Harvest date is optional on terrains; when present it must not be in
	// the past.
	if f.HarvestDate != "" {
		if d, err := ParseISODate(f.HarvestDate); err != nil {
			errs = append(errs, FieldError{Field: "harvestDate", Message: "Fecha inválida, use AAAA-MM-DD"})
		} else if d.Before(dateOnly(now)) {
			errs = append(errs, FieldError{Field: "harvestDate", Message: "La fecha de cosecha no puede ser un día anterior a la fecha actual"})
		}
	}
	if strings.TrimSpace(f.Location) == "" {
		errs = append(errs, FieldError{Field: "location", Message: "Ubicación es requerido"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Payload builds the wire object for a validated form. photoURL is the
// resolved image location (uploaded or passed through); email and fullName
// come from the caller's identity.
func (f *TerrainForm) Payload(photoURL, email, fullName string) (*Terrain, error) {
	area, err := ParseArea(f.Area)
	if err != nil {
		return nil, err
	}
	return &Terrain{
		Name:        strings.TrimSpace(f.Name),
		Area:        area,
		SoilType:    SoilType(f.SoilType),
		Photo:       photoURL,
		Email:       email,
		FullName:    fullName,
		ForSale:     f.ForSale,
		Location:    strings.TrimSpace(f.Location),
		HarvestDate: f.HarvestDate,
	}, nil
}
