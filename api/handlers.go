package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/color-game/ranker/colormath"
	"github.com/color-game/ranker/models"
	"github.com/color-game/ranker/ranker"
)

const defaultPalette = "html"

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Ranking API")
}

// queryColor resolves a color query parameter, accepting palette names
func (app *Application) queryColor(r *http.Request, param string) (colormath.Properties, error) {
	value := r.URL.Query().Get(param)
	if value == "" {
		return colormath.Properties{}, &colormath.InvalidColorError{Input: value, Reason: param + " is required"}
	}

	palette := r.URL.Query().Get("palette")
	if palette == "" {
		palette = defaultPalette
	}

	resolved, err := app.Palettes.Resolve(palette, value)
	if err != nil {
		return colormath.Properties{}, err
	}
	return colormath.Parse(resolved)
}

// POST /v1/colors/rank - Rank a list of colors
func (app *Application) rankColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, app.Config.maxBodyBytes())
	request := &models.RankRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			app.requestTooLarge(w, r, err)
			return
		}
		app.badJSONRequest(w, r, err)
		return
	}

	if app.Config.MaxRankColors > 0 && len(request.Colors) > app.Config.MaxRankColors {
		app.badRequest(w, r, fmt.Errorf("%w: got %d, limit is %d", ErrTooManyColors, len(request.Colors), app.Config.MaxRankColors))
		return
	}

	// Translate color names before they reach the engine
	colors := request.Colors
	if request.Palette != "" {
		colors = make([]any, len(request.Colors))
		for i, c := range request.Colors {
			resolved, err := app.Palettes.Resolve(request.Palette, c)
			if err != nil {
				app.colorError(w, r, err)
				return
			}
			colors[i] = resolved
		}
	}

	result, err := ranker.Run(colors, request.Options)
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	response := models.RankResponse{
		Ranks:  result.Ranks,
		Sorted: make([]string, len(result.Sorted)),
		Mode:   "direct",
	}
	if request.Options.IsChain() {
		response.Mode = "chain"
	}
	for i, p := range result.Sorted {
		response.Sorted[i] = p.HTMLHex()
	}

	writeJSON(w, response)
}

// GET /v1/colors/properties?color= - Canonical properties of one color
func (app *Application) colorProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	props, err := app.queryColor(r, "color")
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	// A single property can be requested with ?property=
	if name := r.URL.Query().Get("property"); name != "" {
		value, err := props.GetProperty(name)
		if err != nil {
			app.colorError(w, r, err)
			return
		}
		writeJSON(w, map[string]any{name: value})
		return
	}

	writeJSON(w, models.PropertiesResponse{
		Input:      r.URL.Query().Get("color"),
		Properties: props,
	})
}

// GET /v1/colors/distance?a=&b=&metric= - Distance between two colors
func (app *Application) colorDistance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	a, err := app.queryColor(r, "a")
	if err != nil {
		app.colorError(w, r, err)
		return
	}
	b, err := app.queryColor(r, "b")
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	metric, err := colormath.ParseMetric(r.URL.Query().Get("metric"))
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	distance, err := a.DistanceWith(b, metric)
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	writeJSON(w, models.DistanceResponse{
		A:        a.HTMLHex(),
		B:        b.HTMLHex(),
		Metric:   metric,
		Distance: distance,
	})
}

// GET /v1/palettes - Known palette names
func (app *Application) listPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	if name := r.URL.Query().Get("palette"); name != "" {
		palette, err := app.Palettes.Get(name)
		if err != nil {
			app.colorError(w, r, err)
			return
		}
		writeJSON(w, palette)
		return
	}

	writeJSON(w, models.PaletteListResponse{Palettes: app.Palettes.Names()})
}

// GET /v1/palettes/color?palette=&name= - Look up a color by name
func (app *Application) paletteColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	palette := r.URL.Query().Get("palette")
	name := r.URL.Query().Get("name")
	if palette == "" || name == "" {
		app.badRequest(w, r, errors.New("palette and name are required"))
		return
	}

	writeJSON(w, app.Palettes.Lookup(palette, name))
}

// GET /v1/palettes/name?palette=&color= - Name of an exact color
func (app *Application) paletteColorName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	palette := r.URL.Query().Get("palette")
	color := r.URL.Query().Get("color")
	if palette == "" || color == "" {
		app.badRequest(w, r, errors.New("palette and color are required"))
		return
	}

	result, err := app.Palettes.NameOf(palette, color)
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	writeJSON(w, result)
}

// GET /v1/palettes/closest?palette=&color=&metric= - Nearest palette color
func (app *Application) closestPaletteColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	palette := r.URL.Query().Get("palette")
	color := r.URL.Query().Get("color")
	if palette == "" || color == "" {
		app.badRequest(w, r, errors.New("palette and color are required"))
		return
	}

	match, err := app.Palettes.Closest(palette, color, colormath.Metric(r.URL.Query().Get("metric")))
	if err != nil {
		app.colorError(w, r, err)
		return
	}

	writeJSON(w, match)
}
