package datastore

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/color-game/ranker/colormath"
	"github.com/color-game/ranker/models"
)

type PaletteRepository interface {
	Names() []string
	Get(palette string) (models.Palette, error)
	Lookup(palette, colorName string) models.PaletteColorResult
	NameOf(palette string, color any) (models.PaletteColorResult, error)
	Closest(palette string, color any, metric colormath.Metric) (models.ClosestMatch, error)
	Resolve(palette string, color any) (any, error)
}

type paletteEntry struct {
	key   string
	color models.PaletteColor
	props colormath.Properties
}

type storedPalette struct {
	name    string
	entries []paletteEntry // definition order
	byKey   map[string]int
}

// MemoryPalettes is a read-only, in-memory PaletteRepository. It is safe for
// concurrent use once constructed.
type MemoryPalettes struct {
	palettes map[string]storedPalette
}

// NormalizeName lowercases a palette or color name, drops whitespace and
// folds "grey" into "gray".
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), "grey", "gray")
}

func NewMemoryPalettes(palettes ...models.Palette) (MemoryPalettes, error) {
	mp := MemoryPalettes{palettes: make(map[string]storedPalette, len(palettes))}

	for _, p := range palettes {
		key := NormalizeName(p.Name)
		if key == "" {
			return MemoryPalettes{}, fmt.Errorf("palette name is required")
		}
		if _, exists := mp.palettes[key]; exists {
			return MemoryPalettes{}, fmt.Errorf("duplicate palette %q", p.Name)
		}

		stored := storedPalette{name: p.Name, byKey: make(map[string]int, len(p.Colors))}
		for _, c := range p.Colors {
			props, err := colormath.Parse(c.Value)
			if err != nil {
				return MemoryPalettes{}, fmt.Errorf("palette %s color %s: %w", p.Name, c.Name, err)
			}
			stored.entries = append(stored.entries, paletteEntry{
				key:   NormalizeName(c.Name),
				color: models.PaletteColor{Name: c.Name, Value: props.HTMLHex()},
				props: props,
			})
		}

		for i, e := range stored.entries {
			if _, exists := stored.byKey[e.key]; exists {
				return MemoryPalettes{}, fmt.Errorf("palette %s has duplicate color %q", p.Name, e.color.Name)
			}
			stored.byKey[e.key] = i
		}
		mp.palettes[key] = stored
	}

	return mp, nil
}

// Names returns the palette names in sorted order
func (mp MemoryPalettes) Names() []string {
	names := make([]string, 0, len(mp.palettes))
	for _, p := range mp.palettes {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

// Get returns a copy of the palette with its colors in definition order
func (mp MemoryPalettes) Get(palette string) (models.Palette, error) {
	stored, ok := mp.palettes[NormalizeName(palette)]
	if !ok {
		return models.Palette{}, NotFoundError{"palette", palette}
	}

	result := models.Palette{Name: stored.name, Colors: make([]models.PaletteColor, len(stored.entries))}
	for i, e := range stored.entries {
		result.Colors[i] = e.color
	}
	return result, nil
}

// Lookup finds a color by name. A missing palette or color is reported
// through the result status rather than an error.
func (mp MemoryPalettes) Lookup(palette, colorName string) models.PaletteColorResult {
	result := models.PaletteColorResult{
		Name:    colorName,
		Palette: palette,
		Status:  models.StatusNoSuchPalette,
	}

	stored, ok := mp.palettes[NormalizeName(palette)]
	if !ok {
		return result
	}

	i, ok := stored.byKey[NormalizeName(colorName)]
	if !ok {
		result.Status = models.StatusNoSuchColor
		return result
	}

	entry := stored.entries[i]
	props := entry.props
	result.Name = entry.color.Name
	result.Value = entry.color.Value
	result.Status = models.StatusOK
	result.Properties = &props
	return result
}

// NameOf finds the palette entry whose canonical hex equals color
func (mp MemoryPalettes) NameOf(palette string, color any) (models.PaletteColorResult, error) {
	props, err := colormath.Parse(color)
	if err != nil {
		return models.PaletteColorResult{}, err
	}

	stored, ok := mp.palettes[NormalizeName(palette)]
	if !ok {
		return mp.Lookup(palette, ""), nil
	}

	for _, e := range stored.entries {
		if e.props.Equal(props) {
			return mp.Lookup(palette, e.color.Name), nil
		}
	}
	return mp.Lookup(palette, ""), nil
}

// Closest returns the palette entry nearest to color. Ties keep the entry
// defined first.
func (mp MemoryPalettes) Closest(palette string, color any, metric colormath.Metric) (models.ClosestMatch, error) {
	metric, err := colormath.ParseMetric(string(metric))
	if err != nil {
		return models.ClosestMatch{}, err
	}

	target, err := colormath.Parse(color)
	if err != nil {
		return models.ClosestMatch{}, err
	}

	stored, ok := mp.palettes[NormalizeName(palette)]
	if !ok {
		return models.ClosestMatch{}, NotFoundError{"palette", palette}
	}
	if len(stored.entries) == 0 {
		return models.ClosestMatch{}, NotFoundError{"color", "in empty palette " + palette}
	}

	best := -1
	var bestDistance float64
	for i, e := range stored.entries {
		d, err := target.DistanceWith(e.props, metric)
		if err != nil {
			return models.ClosestMatch{}, err
		}
		if best == -1 || d < bestDistance {
			best, bestDistance = i, d
		}
	}

	return models.ClosestMatch{
		Palette:    stored.name,
		Member:     stored.entries[best].color,
		Distance:   bestDistance,
		Metric:     metric,
		Properties: stored.entries[best].props,
	}, nil
}

// Resolve replaces color names with their palette hex value. A name defined
// in the palette wins over a hex reading of the same string. Other hex
// strings, numbers and values are returned untouched; single-value rows are
// resolved element by element.
func (mp MemoryPalettes) Resolve(palette string, color any) (any, error) {
	switch v := color.(type) {
	case []any:
		resolved := make([]any, len(v))
		for i, c := range v {
			r, err := mp.Resolve(palette, c)
			if err != nil {
				return nil, err
			}
			resolved[i] = r
		}
		return resolved, nil
	case string:
		result := mp.Lookup(palette, v)
		switch {
		case result.Status == models.StatusOK:
			return result.Value, nil
		case colormath.IsHex(v):
			return v, nil
		case result.Status == models.StatusNoSuchPalette:
			return nil, NotFoundError{"palette", palette}
		default:
			return nil, NotFoundError{"color", v}
		}
	}
	return color, nil
}
