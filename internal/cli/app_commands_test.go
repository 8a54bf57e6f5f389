package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorverde/gestorverde/internal/api"
	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/gestorverde/gestorverde/internal/session"
	"github.com/gestorverde/gestorverde/internal/workflow"
)

// fakeClient implements the api.Client slices the command tests exercise.
// Any unstubbed method panics via the embedded nil interface.
type fakeClient struct {
	api.Client

	terrain    *models.Terrain
	terrainErr error

	deletedID int64
	deleteErr error

	seeds []models.SeedType
}

func (f *fakeClient) Terrain(_ context.Context, id int64) (*models.Terrain, error) {
	return f.terrain, f.terrainErr
}

func (f *fakeClient) DeleteTerrain(_ context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeClient) SeedTypes(context.Context) ([]models.SeedType, error) {
	return f.seeds, nil
}

type fakeIdentity struct {
	ident session.Identity
	ok    bool
}

func (f *fakeIdentity) Identity() (session.Identity, bool) { return f.ident, f.ok }

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, path string) (string, error) {
	return "https://img.example/" + path, nil
}

func terrainPage(names ...string) *models.Page[models.Terrain] {
	terrains := make([]models.Terrain, len(names))
	for i, name := range names {
		terrains[i] = models.Terrain{ID: int64(i + 1), Name: name, Area: 3, SoilType: models.SoilMixto, Location: "Valle"}
	}
	return &models.Page[models.Terrain]{Content: terrains, PageNumber: 0, TotalPages: 1, TotalElements: len(names)}
}

func newCommandTestApp(client *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := &App{
		log:    nopLogger{},
		client: client,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	a.terrains = workflow.NewTerrainService(client, fakeUploader{}, &fakeIdentity{}, nopLogger{})
	a.crops = workflow.NewCropService(client, fakeUploader{}, nopLogger{})
	a.browsePager = workflow.NewPager(func(ctx context.Context, page, size int) (*models.Page[models.Terrain], error) {
		return terrainPage("Lote Norte", "Lote Sur"), nil
	}, 6)
	a.myPager = workflow.NewPager(func(ctx context.Context, page, size int) (*models.Page[models.Terrain], error) {
		return terrainPage("Lote Propio"), nil
	}, 6)
	return a, out
}

func TestBrowse_PrintsPage(t *testing.T) {
	a, out := newCommandTestApp(&fakeClient{}, "")

	require.NoError(t, a.Browse(context.Background(), nil))

	assert.Contains(t, out.String(), "Lote Norte")
	assert.Contains(t, out.String(), "Lote Sur")
	assert.Contains(t, out.String(), "Página 1 de 1")
}

func TestBrowse_InvalidPage(t *testing.T) {
	fetched := false
	a, out := newCommandTestApp(&fakeClient{}, "")
	a.browsePager = workflow.NewPager(func(ctx context.Context, page, size int) (*models.Page[models.Terrain], error) {
		fetched = true
		return terrainPage(), nil
	}, 6)

	require.NoError(t, a.Browse(context.Background(), []string{"cero"}))

	assert.False(t, fetched, "invalid page must not hit the backend")
	assert.Contains(t, out.String(), "Página inválida")
}

func TestShow_TerrainWithCrops(t *testing.T) {
	client := &fakeClient{terrain: &models.Terrain{
		ID:       7,
		Name:     "Lote Norte",
		Area:     4.5,
		SoilType: models.SoilArenoso,
		Location: "Valle Alto",
		FullName: "Ana Díaz",
		Email:    "ana@campo.es",
		Crops: []models.Crop{
			{ID: 3, SeedType: models.SeedType{ID: 1, Name: "Trigo"}, Area: 2, HarvestDate: "2026-06-01"},
		},
	}}
	a, out := newCommandTestApp(client, "")

	require.NoError(t, a.Show(context.Background(), []string{"7"}))

	assert.Contains(t, out.String(), "Terreno 7: Lote Norte")
	assert.Contains(t, out.String(), "Ana Díaz <ana@campo.es>")
	assert.Contains(t, out.String(), "Trigo")
}

func TestDeleteTerrain_Confirmed(t *testing.T) {
	client := &fakeClient{}
	a, out := newCommandTestApp(client, "s\n")

	require.NoError(t, a.DeleteTerrain(context.Background(), []string{"42"}))

	assert.Equal(t, int64(42), client.deletedID)
	assert.Contains(t, out.String(), "Terreno eliminado")
}

func TestDeleteTerrain_Declined(t *testing.T) {
	client := &fakeClient{}
	a, out := newCommandTestApp(client, "\n")

	require.NoError(t, a.DeleteTerrain(context.Background(), []string{"42"}))

	assert.Zero(t, client.deletedID, "declined delete must not hit the backend")
	assert.Contains(t, out.String(), "Operación cancelada")
}

func TestSeeds(t *testing.T) {
	client := &fakeClient{seeds: []models.SeedType{{ID: 1, Name: "Trigo"}, {ID: 2, Name: "Maíz"}}}
	a, out := newCommandTestApp(client, "")

	require.NoError(t, a.Seeds(context.Background()))

	assert.Contains(t, out.String(), "Trigo")
	assert.Contains(t, out.String(), "Maíz")
}
