package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func validTerrainForm() TerrainForm {
	return TerrainForm{
		Name:     "Lote 1",
		Area:     "10",
		SoilType: "Mixto",
		PhotoURL: "https://cdn/img.jpg",
		Location: "Valle",
		ForSale:  true,
	}
}

func TestTerrainForm_Validate_OK(t *testing.T) {
	f := validTerrainForm()
	require.NoError(t, f.Validate(now))
}

func TestTerrainForm_Validate_AreaBounds(t *testing.T) {
	tests := []struct {
		area string
		ok   bool
	}{
		{"0", false},
		{"-3", false},
		{"51", false},
		{"abc", false},
		{"", false},
		{"0.5", true},
		{"1", true},
		{"50", true},
	}
	for _, tt := range tests {
		f := validTerrainForm()
		f.Area = tt.area
		err := f.Validate(now)
		if tt.ok {
			assert.NoError(t, err, "area %q", tt.area)
			continue
		}
		require.Error(t, err, "area %q", tt.area)
		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("area"))
	}
}

func TestTerrainForm_Validate_RequiredFields(t *testing.T) {
	f := TerrainForm{}
	err := f.Validate(now)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	for _, field := range []string{"name", "area", "soilType", "photo", "location"} {
		assert.True(t, verrs.Has(field), "missing error for %s", field)
	}
}

func TestTerrainForm_Validate_SoilTypeEnum(t *testing.T) {
	f := validTerrainForm()
	f.SoilType = "Volcánico"
	err := f.Validate(now)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("soilType"))
}

func TestTerrainForm_Validate_HarvestDate(t *testing.T) {
	f := validTerrainForm()
	f.HarvestDate = "2026-03-14" // yesterday
	err := f.Validate(now)
	require.Error(t, err)

	f.HarvestDate = "2026-03-15" // today is allowed
	require.NoError(t, f.Validate(now))

	f.HarvestDate = "2026-04-01"
	require.NoError(t, f.Validate(now))

	f.HarvestDate = "" // optional on terrains
	require.NoError(t, f.Validate(now))
}

func TestTerrainForm_Payload(t *testing.T) {
	f := validTerrainForm()
	p, err := f.Payload("https://cdn/img.jpg", "a@b.com", "Ana Díaz")
	require.NoError(t, err)

	assert.Equal(t, "Lote 1", p.Name)
	assert.Equal(t, 10.0, p.Area)
	assert.Equal(t, SoilMixto, p.SoilType)
	assert.Equal(t, "https://cdn/img.jpg", p.Photo)
	assert.Equal(t, "a@b.com", p.Email)
	assert.Equal(t, "Ana Díaz", p.FullName)
	assert.True(t, p.ForSale)
	assert.Equal(t, "Valle", p.Location)
	assert.Zero(t, p.ID, "ids are server-assigned, never synthesized")
}

func TestTerrainForm_Payload_HarvestDate(t *testing.T) {
	f := validTerrainForm()
	f.HarvestDate = "2026-06-01"
	p, err := f.Payload("https://cdn/img.jpg", "a@b.com", "Ana Díaz")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", p.HarvestDate, "announced harvest date reaches the wire")

	f.HarvestDate = ""
	p, err = f.Payload("https://cdn/img.jpg", "a@b.com", "Ana Díaz")
	require.NoError(t, err)
	assert.Empty(t, p.HarvestDate)
}

func TestSoilType_Valid(t *testing.T) {
	for _, s := range SoilTypes {
		assert.True(t, s.Valid())
	}
	assert.False(t, SoilType("").Valid())
	assert.False(t, SoilType("arenoso").Valid(), "case sensitive")
}
