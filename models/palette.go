package models

import "github.com/color-game/ranker/colormath"

const (
	StatusOK            = "ok"
	StatusNoSuchColor   = "no such color"
	StatusNoSuchPalette = "no such palette"
)

// PaletteColor is one named entry of a palette
type PaletteColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Palette is a named list of colors
type Palette struct {
	Name   string         `json:"name"`
	Colors []PaletteColor `json:"colors"`
}

// PaletteColorResult is the answer to a name or code lookup in a palette
type PaletteColorResult struct {
	Name       string                `json:"name"`
	Value      string                `json:"value"`
	Palette    string                `json:"palette"`
	Status     string                `json:"status"`
	Properties *colormath.Properties `json:"properties"`
}

type ClosestMatch struct {
	Palette    string               `json:"palette"`
	Member     PaletteColor         `json:"member"`
	Distance   float64              `json:"diff"`
	Metric     colormath.Metric     `json:"metric"`
	Properties colormath.Properties `json:"properties"`
}

type PaletteListResponse struct {
	Palettes []string `json:"palettes"`
}
