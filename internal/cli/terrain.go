package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gestorverde/gestorverde/internal/models"
	"github.com/gestorverde/gestorverde/internal/workflow"
)

// Browse lists one page of the public terrain listing.
func (a *App) Browse(ctx context.Context, args []string) error {
	page := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			a.notify("Página inválida: %q", args[0])
			return nil
		}
		page = n - 1
	}

	result, applied, err := a.browsePager.Load(ctx, page)
	if err != nil {
		a.notify("Error al cargar terrenos: %v", err)
		return err
	}
	if !applied {
		// A newer page already landed; keep showing it.
		result = a.browsePager.Current()
	}
	a.printTerrainPage(result)
	return nil
}

// Mine lists one page of the authenticated user's terrains.
func (a *App) Mine(ctx context.Context, args []string) error {
	page := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			a.notify("Página inválida: %q", args[0])
			return nil
		}
		page = n - 1
	}

	result, applied, err := a.myPager.Load(ctx, page)
	if err != nil {
		a.notify("Error al cargar tus terrenos: %v", err)
		return err
	}
	if !applied {
		result = a.myPager.Current()
	}
	a.printTerrainPage(result)
	return nil
}

func (a *App) printTerrainPage(p *models.Page[models.Terrain]) {
	if p == nil || len(p.Content) == 0 {
		a.notify("Sin terrenos para mostrar")
		return
	}
	for _, t := range p.Content {
		sale := "no"
		if t.ForSale {
			sale = "sí"
		}
		a.notify("%4d  %-20s  %5.1f ha  %-10s  %-15s  venta: %s",
			t.ID, t.Name, t.Area, t.SoilType, t.Location, sale)
	}
	a.notify("Página %d de %d (%d terrenos)", p.PageNumber+1, p.TotalPages, p.TotalElements)
}

// Add prompts for a terrain form and creates it. After a failed submit the
// typed values are re-offered as defaults so the user only fixes the bad
// field.
func (a *App) Add(ctx context.Context) error {
	defaults := models.TerrainForm{ForSale: true}
	for {
		form, err := a.promptTerrainForm(defaults)
		if err != nil {
			return err
		}
		if err := a.submitTerrain(ctx, form, workflow.ModeCreate, 0, "Agregado con éxito"); err != nil {
			defaults = *form
			if Confirm(a.reader, "¿Reintentar?", os.Stdout) {
				continue
			}
			return err
		}
		return nil
	}
}

// Edit fetches the terrain, re-prompts each field with the current value as
// default and updates it.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("Uso: edit <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		a.notify("%v", err)
		return nil
	}

	current, err := a.client.Terrain(ctx, id)
	if err != nil {
		a.notify("Error al cargar el terreno: %v", err)
		return err
	}

	defaults := models.TerrainForm{
		Name:        current.Name,
		Area:        strconv.FormatFloat(current.Area, 'f', -1, 64),
		SoilType:    string(current.SoilType),
		PhotoURL:    current.Photo,
		HarvestDate: current.HarvestDate,
		ForSale:     current.ForSale,
		Location:    current.Location,
	}
	for {
		form, err := a.promptTerrainForm(defaults)
		if err != nil {
			return err
		}
		if err := a.submitTerrain(ctx, form, workflow.ModeUpdate, id, "Actualizado con éxito"); err != nil {
			defaults = *form
			if Confirm(a.reader, "¿Reintentar?", os.Stdout) {
				continue
			}
			return err
		}
		return nil
	}
}

func (a *App) submitTerrain(ctx context.Context, form *models.TerrainForm, mode workflow.Mode, id int64, successMsg string) error {
	_, err := a.terrains.Submit(ctx, form, mode, id)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				a.notify("  %s: %s", fe.Field, fe.Message)
			}
			return err
		}
		a.notify("Error: %v", err)
		return err
	}

	a.notify("%s", successMsg)

	// The visible list is refreshed from the server; ids are never made up
	// locally.
	if _, _, err := a.myPager.Reload(ctx); err != nil {
		a.log.Warn(ctx, "list refresh failed", "error", err)
	}
	return nil
}

// Show prints one terrain with its crops.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("Uso: show <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		a.notify("%v", err)
		return nil
	}

	t, err := a.client.Terrain(ctx, id)
	if err != nil {
		a.notify("Error al cargar el terreno: %v", err)
		return err
	}

	a.notify("Terreno %d: %s", t.ID, t.Name)
	a.notify("  Área: %.1f ha   Suelo: %s   Ubicación: %s", t.Area, t.SoilType, t.Location)
	a.notify("  Agricultor: %s <%s>", t.FullName, t.Email)
	a.notify("  Foto: %s", t.Photo)
	if len(t.Crops) == 0 {
		a.notify("  Sin cultivos")
		return nil
	}
	for _, c := range t.Crops {
		a.notify("  Cultivo %d: %s, %.1f ha, cosecha %s", c.ID, c.SeedType.Name, c.Area, c.HarvestDate)
	}
	return nil
}

// DeleteTerrain removes a terrain after confirmation.
func (a *App) DeleteTerrain(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("Uso: delete <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		a.notify("%v", err)
		return nil
	}

	confirm := func() bool {
		return Confirm(a.reader, fmt.Sprintf("¿Eliminar el terreno %d?", id), os.Stdout)
	}
	if err := a.terrains.Delete(ctx, id, confirm); err != nil {
		if errors.Is(err, workflow.ErrDeclined) {
			a.notify("Operación cancelada")
			return nil
		}
		a.notify("Error al eliminar el terreno: %v", err)
		return err
	}

	a.notify("Terreno eliminado")
	if _, _, err := a.myPager.Reload(ctx); err != nil {
		a.log.Warn(ctx, "list refresh failed", "error", err)
	}
	return nil
}

// promptTerrainForm collects the terrain fields, offering defaults from a
// previous form (edit flows, or retrying after a failed submit). Area input
// is rejected immediately when it is not a positive number; the workflow
// validates it again at submit time.
func (a *App) promptTerrainForm(defaults models.TerrainForm) (*models.TerrainForm, error) {
	form := defaults

	name, err := GetDefaultedText(a.reader, "Nombre del terreno", defaults.Name, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.Name = name

	area, err := GetDefaultedText(a.reader, "Área en hectáreas", defaults.Area, os.Stdout)
	if err != nil {
		return nil, err
	}
	if _, aerr := models.ParseArea(area); aerr != nil {
		a.notify("Área rechazada: %v", aerr)
		return nil, aerr
	}
	form.Area = area

	soils := make([]string, len(models.SoilTypes))
	for i, s := range models.SoilTypes {
		soils[i] = string(s)
	}
	soil, err := GetDefaultedText(a.reader, "Tipo de suelo ("+strings.Join(soils, ", ")+")", defaults.SoilType, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.SoilType = soil

	photo, err := GetDefaultedText(a.reader, "Imagen (ruta local o URL)", defaults.PhotoURL, os.Stdout)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		form.PhotoURL = photo
		form.PhotoFile = ""
	} else {
		form.PhotoFile = photo
		form.PhotoURL = ""
	}

	harvest, err := GetDefaultedText(a.reader, "Fecha de cosecha (AAAA-MM-DD, opcional)", defaults.HarvestDate, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.HarvestDate = harvest

	forSale, err := GetBool(a.reader, "¿En venta?", defaults.ForSale, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.ForSale = forSale

	location, err := GetDefaultedText(a.reader, "Ubicación del terreno", defaults.Location, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.Location = location

	return &form, nil
}
