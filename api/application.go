package api

import (
	"github.com/color-game/ranker/datastore"
)

type Config struct {
	HTTPPort          string
	JwtSecret         string
	JwtAccessDuration int // seconds
	AllowedOrigins    []string
	DevMode           bool
	PaletteFile       string
	MaxRankColors     int
	MaxBodyBytes      int64
}

// DefaultMaxBodyBytes caps request bodies when Config.MaxBodyBytes is unset.
const DefaultMaxBodyBytes = 1 << 20

func (c Config) maxBodyBytes() int64 {
	if c.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}
	return c.MaxBodyBytes
}

type Application struct {
	Config   Config
	Palettes datastore.PaletteRepository
}
