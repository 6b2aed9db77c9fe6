package datastore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/color-game/ranker/models"
)

// LoadPaletteFile reads a JSON array of palettes
func LoadPaletteFile(path string) ([]models.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading palette file -> %w", err)
	}

	var palettes []models.Palette
	if err := json.Unmarshal(data, &palettes); err != nil {
		return nil, fmt.Errorf("error parsing palette file %s -> %w", path, err)
	}

	return palettes, nil
}

// NewPaletteRepository builds the repository from the builtin palettes plus
// any palettes found in path. An empty path loads only the builtins.
func NewPaletteRepository(path string) (MemoryPalettes, error) {
	palettes := BuiltinPalettes()
	if path != "" {
		extra, err := LoadPaletteFile(path)
		if err != nil {
			return MemoryPalettes{}, err
		}
		palettes = append(palettes, extra...)
	}
	return NewMemoryPalettes(palettes...)
}
