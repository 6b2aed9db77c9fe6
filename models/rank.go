package models

import (
	"github.com/color-game/ranker/colormath"
	"github.com/color-game/ranker/ranker"
)

// RankRequest is the body of POST /v1/colors/rank. Colors may be hex
// strings, packed rgb numbers, single-value rows, or color names when
// Palette is set.
type RankRequest struct {
	Colors  []any          `json:"colors"`
	Options ranker.Options `json:"options"`
	Palette string         `json:"palette,omitempty"`
}

// RankResponse holds one rank per requested color, plus the canonical hex
// values in ranked order
type RankResponse struct {
	Ranks  []int    `json:"ranks"`
	Sorted []string `json:"sorted"`
	Mode   string   `json:"mode"`
}

type PropertiesResponse struct {
	Input      string               `json:"input"`
	Properties colormath.Properties `json:"properties"`
}

type DistanceResponse struct {
	A        string           `json:"a"`
	B        string           `json:"b"`
	Metric   colormath.Metric `json:"metric"`
	Distance float64          `json:"distance"`
}
