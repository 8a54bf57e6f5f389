package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCropForm() CropForm {
	return CropForm{
		SeedTypeID:  3,
		Area:        "2.5",
		PhotoURL:    "https://cdn/crop.jpg",
		HarvestDate: "2026-05-01",
		ForSale:     true,
	}
}

func TestCropForm_Validate_OK(t *testing.T) {
	f := validCropForm()
	require.NoError(t, f.Validate(now))
}

func TestCropForm_Validate_HarvestDateRequired(t *testing.T) {
	f := validCropForm()
	f.HarvestDate = ""
	err := f.Validate(now)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("harvestDate"))
}

func TestCropForm_Validate_PastHarvestDate(t *testing.T) {
	f := validCropForm()
	f.HarvestDate = "2025-12-31"
	err := f.Validate(now)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("harvestDate"))
}

func TestCropForm_Validate_SeedType(t *testing.T) {
	f := validCropForm()
	f.SeedTypeID = 0
	err := f.Validate(now)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("seedTypeId"))
}

func TestCropForm_Payload(t *testing.T) {
	f := validCropForm()
	p, err := f.Payload(42, "https://cdn/crop.jpg")
	require.NoError(t, err)

	assert.Equal(t, int64(42), p.TerrainID)
	assert.Equal(t, int64(3), p.SeedTypeID)
	assert.Equal(t, 2.5, p.Area)
	assert.Equal(t, "2026-05-01", p.HarvestDate)
	assert.True(t, p.ForSale)
}
