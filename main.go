package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/color-game/ranker/api"
	"github.com/color-game/ranker/datastore"
	"github.com/color-game/ranker/models"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		JwtSecret:         getEnv("JWT_SECRET", ""),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 86400), // 1 day
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:           getEnvBool("DEV_MODE", true),
		PaletteFile:       getEnv("PALETTE_FILE", ""),
		MaxRankColors:     getEnvInt("MAX_RANK_COLORS", 1000),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", api.DefaultMaxBodyBytes)),
	}

	// `ranker token <subject>` prints an access token and exits
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(config, os.Args[2:]); err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		return
	}

	palettes, err := datastore.NewPaletteRepository(config.PaletteFile)
	if err != nil {
		log.Fatalf("Failed to load palettes: %v", err)
	}
	log.Printf("Loaded palettes: %s", strings.Join(palettes.Names(), ", "))

	if config.JwtSecret == "" {
		log.Println("JWT_SECRET is empty, ranking endpoint is unauthenticated")
	}

	app := &api.Application{
		Config:   config,
		Palettes: palettes,
	}

	// Create and start server
	mux := http.NewServeMux()

	log.Println("Color Ranking API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printToken(config api.Config, args []string) error {
	if config.JwtSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set to issue tokens")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: ranker token <subject>")
	}

	ttl := time.Second * time.Duration(config.JwtAccessDuration)
	token, expiry, err := models.NewAccessToken(args[0], config.JwtSecret, ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	log.Printf("token for %s expires %s", args[0], expiry.Format(time.RFC3339))
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
