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

// Seeds prints the seed type catalog.
func (a *App) Seeds(ctx context.Context) error {
	seeds, err := a.crops.SeedTypes(ctx)
	if err != nil {
		a.notify("Error al cargar los tipos de semilla: %v", err)
		return err
	}
	for _, s := range seeds {
		a.notify("%4d  %s", s.ID, s.Name)
	}
	return nil
}

// AddCrop prompts for a crop form and attaches it to the given terrain.
func (a *App) AddCrop(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("Uso: addcrop <id de terreno>")
		return nil
	}
	terrainID, err := parseID(args[0])
	if err != nil {
		a.notify("%v", err)
		return nil
	}

	defaults := models.CropForm{ForSale: true}
	for {
		form, err := a.promptCropForm(ctx, defaults)
		if err != nil {
			return err
		}
		if err := a.submitCrop(ctx, form, workflow.ModeCreate, terrainID, 0, "Agregado con éxito"); err != nil {
			defaults = *form
			if Confirm(a.reader, "¿Reintentar?", os.Stdout) {
				continue
			}
			return err
		}
		return nil
	}
}

// EditCrop updates an existing crop on the given terrain.
func (a *App) EditCrop(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.notify("Uso: editcrop <id de terreno> <id de cultivo>")
		return nil
	}
	terrainID, err := parseID(args[0])
	if err != nil {
		a.notify("%v", err)
		return nil
	}
	cropID, err := parseID(args[1])
	if err != nil {
		a.notify("%v", err)
		return nil
	}

	defaults := models.CropForm{ForSale: true}
	for {
		form, err := a.promptCropForm(ctx, defaults)
		if err != nil {
			return err
		}
		if err := a.submitCrop(ctx, form, workflow.ModeUpdate, terrainID, cropID, "Actualizado con éxito"); err != nil {
			defaults = *form
			if Confirm(a.reader, "¿Reintentar?", os.Stdout) {
				continue
			}
			return err
		}
		return nil
	}
}

func (a *App) submitCrop(ctx context.Context, form *models.CropForm, mode workflow.Mode, terrainID, cropID int64, successMsg string) error {
	_, err := a.crops.Submit(ctx, form, mode, terrainID, cropID)
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
	if _, _, err := a.myPager.Reload(ctx); err != nil {
		a.log.Warn(ctx, "list refresh failed", "error", err)
	}
	return nil
}

// DeleteCrop removes a crop after confirmation.
func (a *App) DeleteCrop(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("Uso: delcrop <id>")
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		a.notify("%v", err)
		return nil
	}

	confirm := func() bool {
		return Confirm(a.reader, fmt.Sprintf("¿Eliminar el cultivo %d?", id), os.Stdout)
	}
	if err := a.crops.Delete(ctx, id, confirm); err != nil {
		if errors.Is(err, workflow.ErrDeclined) {
			a.notify("Operación cancelada")
			return nil
		}
		a.notify("Error al eliminar el cultivo: %v", err)
		return err
	}

	a.notify("Cultivo eliminado")
	if _, _, err := a.myPager.Reload(ctx); err != nil {
		a.log.Warn(ctx, "list refresh failed", "error", err)
	}
	return nil
}

// promptCropForm collects the crop fields. The seed type is picked from the
// server catalog so an id that does not exist cannot be submitted.
func (a *App) promptCropForm(ctx context.Context, defaults models.CropForm) (*models.CropForm, error) {
	form := defaults

	seeds, err := a.crops.SeedTypes(ctx)
	if err != nil {
		a.notify("Error al cargar los tipos de semilla: %v", err)
		return nil, err
	}
	for _, s := range seeds {
		a.notify("%4d  %s", s.ID, s.Name)
	}

	raw, err := getSimpleText(a.reader, "Tipo de semilla (id)", os.Stdout)
	if err != nil {
		return nil, err
	}
	seedID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || !knownSeed(seeds, seedID) {
		serr := fmt.Errorf("tipo de semilla inválido: %q", raw)
		a.notify("%v", serr)
		return nil, serr
	}
	form.SeedTypeID = seedID

	area, err := GetDefaultedText(a.reader, "Área en hectáreas", defaults.Area, os.Stdout)
	if err != nil {
		return nil, err
	}
	if _, aerr := models.ParseArea(area); aerr != nil {
		a.notify("Área rechazada: %v", aerr)
		return nil, aerr
	}
	form.Area = area

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

	harvest, err := GetDefaultedText(a.reader, "Fecha de cosecha (AAAA-MM-DD)", defaults.HarvestDate, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.HarvestDate = harvest

	forSale, err := GetBool(a.reader, "¿En venta?", defaults.ForSale, os.Stdout)
	if err != nil {
		return nil, err
	}
	form.ForSale = forSale

	return &form, nil
}

func knownSeed(seeds []models.SeedType, id int64) bool {
	for _, s := range seeds {
		if s.ID == id {
			return true
		}
	}
	return false
}
