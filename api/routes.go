package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) http.Handler {
	mux.HandleFunc("/", app.home)

	// Color engine
	mux.HandleFunc("/v1/colors/rank", app.authenticate(app.rankColors))
	mux.HandleFunc("/v1/colors/properties", app.colorProperties)
	mux.HandleFunc("/v1/colors/distance", app.colorDistance)

	// Palette lookups
	mux.HandleFunc("/v1/palettes", app.listPalettes)
	mux.HandleFunc("/v1/palettes/color", app.paletteColor)
	mux.HandleFunc("/v1/palettes/name", app.paletteColorName)
	mux.HandleFunc("/v1/palettes/closest", app.closestPaletteColor)

	return withRequestID(logRequests(wrapMuxWithCorsAndOrigins(mux, app)))
}
