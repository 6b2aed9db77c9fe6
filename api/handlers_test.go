package api

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/color-game/ranker/datastore"
	"github.com/color-game/ranker/models"
	"github.com/google/uuid"
)

func newTestApp(t *testing.T, secret string) http.Handler {
	t.Helper()
	palettes, err := datastore.NewMemoryPalettes(datastore.BuiltinPalettes()...)
	if err != nil {
		t.Fatalf("NewMemoryPalettes returned error: %v", err)
	}
	app := &Application{
		Config: Config{
			JwtSecret:      secret,
			AllowedOrigins: []string{"https://colors.example.com"},
			DevMode:        true,
			MaxRankColors:  5,
			MaxBodyBytes:   512,
		},
		Palettes: palettes,
	}
	return app.BuildRoutes(http.NewServeMux())
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHome(t *testing.T) {
	h := newTestApp(t, "")

	rec := doRequest(t, h, http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "Color Ranking API" {
		t.Errorf("GET / = %d %q", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodGet, "/missing", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /missing = %d, want 404", rec.Code)
	}
}

func TestRankColors(t *testing.T) {
	h := newTestApp(t, "")

	tests := []struct {
		name   string
		body   string
		ranks  []int
		sorted []string
		mode   string
	}{
		{
			name:   "direct default hue",
			body:   `{"colors": ["#0000ff", "#ff0000", "#00ff00"]}`,
			ranks:  []int{2, 0, 1},
			sorted: []string{"#ff0000", "#00ff00", "#0000ff"},
			mode:   "direct",
		},
		{
			name:   "chain with palette names and rows",
			body:   `{"colors": ["navy", "#ff0101", ["red"]], "palette": "html", "options": {"sortBy": "#ff0000"}}`,
			ranks:  []int{2, 1, 0},
			sorted: []string{"#ff0000", "#ff0101", "#000080"},
			mode:   "chain",
		},
		{
			name:   "packed numbers",
			body:   `{"colors": [255, 16711680, 65280], "options": {"sortBy": "rgb"}}`,
			ranks:  []int{0, 2, 1},
			sorted: []string{"#0000ff", "#00ff00", "#ff0000"},
			mode:   "direct",
		},
		{
			name:   "empty",
			body:   `{"colors": [], "options": {"sortBy": "#ff0000"}}`,
			ranks:  []int{},
			sorted: []string{},
			mode:   "chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/v1/colors/rank", tt.body, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			resp := decodeBody[models.RankResponse](t, rec)
			if !reflect.DeepEqual(resp.Ranks, tt.ranks) {
				t.Errorf("ranks = %v, want %v", resp.Ranks, tt.ranks)
			}
			if !reflect.DeepEqual(resp.Sorted, tt.sorted) {
				t.Errorf("sorted = %v, want %v", resp.Sorted, tt.sorted)
			}
			if resp.Mode != tt.mode {
				t.Errorf("mode = %s, want %s", resp.Mode, tt.mode)
			}
		})
	}
}

func TestRankColorsErrors(t *testing.T) {
	h := newTestApp(t, "")

	tests := []struct {
		name      string
		method    string
		body      string
		status    int
		errorName string
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed, "Post Method Required"},
		{"bad json", http.MethodPost, `{"colors": [`, http.StatusBadRequest, "Error Parsing JSON"},
		{"unknown property", http.MethodPost, `{"colors": ["#ff0000"], "options": {"sortBy": "nonexistentProperty"}}`, http.StatusBadRequest, "Unknown Property"},
		{"invalid color", http.MethodPost, `{"colors": ["notacolor"]}`, http.StatusBadRequest, "Invalid Color"},
		{"invalid shape", http.MethodPost, `{"colors": [["#ff0000", "#00ff00"]]}`, http.StatusBadRequest, "Invalid Shape"},
		{"unknown metric", http.MethodPost, `{"colors": ["#ff0000"], "options": {"sortBy": "#000000", "metric": "manhattan"}}`, http.StatusBadRequest, "Unknown Metric"},
		{"unknown name", http.MethodPost, `{"colors": ["chartreuse"], "palette": "html"}`, http.StatusNotFound, "Not Found"},
		{"too many colors", http.MethodPost, `{"colors": [1, 2, 3, 4, 5, 6]}`, http.StatusBadRequest, "Bad Request"},
		{"body too large", http.MethodPost, `{"colors": ["` + strings.Repeat("f", 1024) + `"]}`, http.StatusRequestEntityTooLarge, "Request Too Large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, tt.method, "/v1/colors/rank", tt.body, nil)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			handlerErr := decodeBody[HandlerError](t, rec)
			if handlerErr.ErrorName != tt.errorName {
				t.Errorf("errorName = %q, want %q", handlerErr.ErrorName, tt.errorName)
			}
			if handlerErr.RequestID == "" {
				t.Error("error body has no request id")
			}
		})
	}
}

func TestRankColorsAuthentication(t *testing.T) {
	h := newTestApp(t, "test-secret")
	body := `{"colors": ["#ff0000"]}`

	rec := doRequest(t, h, http.MethodPost, "/v1/colors/rank", body, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPost, "/v1/colors/rank", body, map[string]string{"Authorization": "Token abc"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("malformed header: status = %d, want 401", rec.Code)
	}

	bad, _, _ := models.NewAccessToken("someone", "other-secret", time.Minute)
	rec = doRequest(t, h, http.MethodPost, "/v1/colors/rank", body, map[string]string{"Authorization": "Bearer " + bad})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: status = %d, want 401", rec.Code)
	}

	token, _, err := models.NewAccessToken("someone", "test-secret", time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	rec = doRequest(t, h, http.MethodPost, "/v1/colors/rank", body, map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusOK {
		t.Errorf("bearer token: status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/colors/rank", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: models.JWT.ACCESS_COOKIE_NAME, Value: token})
	cookieRec := httptest.NewRecorder()
	h.ServeHTTP(cookieRec, req)
	if cookieRec.Code != http.StatusOK {
		t.Errorf("cookie token: status = %d, want 200", cookieRec.Code)
	}

	// Read-only endpoints stay public
	rec = doRequest(t, h, http.MethodGet, "/v1/palettes", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /v1/palettes with auth enabled = %d, want 200", rec.Code)
	}
}

func TestColorProperties(t *testing.T) {
	h := newTestApp(t, "")

	rec := doRequest(t, h, http.MethodGet, "/v1/colors/properties?color=%23FF0000", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	props := decodeBody[struct {
		Input      string         `json:"input"`
		Properties map[string]any `json:"properties"`
	}](t, rec)
	if props.Properties["htmlHex"] != "#ff0000" || props.Properties["red"] != float64(255) {
		t.Errorf("properties = %v", props.Properties)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/colors/properties?color=navy&property=htmlHex", "", nil)
	single := decodeBody[map[string]any](t, rec)
	if single["htmlHex"] != "#000080" {
		t.Errorf("named color property = %v", single)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/colors/properties?color=%23ff0000&property=nonexistentProperty", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown property status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/colors/properties", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing color status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPost, "/v1/colors/properties?color=%23ff0000", "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestColorDistance(t *testing.T) {
	h := newTestApp(t, "")

	rec := doRequest(t, h, http.MethodGet, "/v1/colors/distance?a=%23000000&b=white", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[models.DistanceResponse](t, rec)
	if math.Abs(resp.Distance-math.Sqrt(3*255*255)) > 1e-9 || resp.Metric != "rgb" || resp.B != "#ffffff" {
		t.Errorf("distance response = %+v", resp)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/colors/distance?a=%23000000&b=%23000000&metric=lab", "", nil)
	if resp := decodeBody[models.DistanceResponse](t, rec); resp.Distance != 0 {
		t.Errorf("identical lab distance = %v", resp.Distance)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/colors/distance?a=%23000000&b=%23ffffff&metric=manhattan", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown metric status = %d, want 400", rec.Code)
	}
}

func TestPaletteEndpoints(t *testing.T) {
	h := newTestApp(t, "")

	rec := doRequest(t, h, http.MethodGet, "/v1/palettes", "", nil)
	list := decodeBody[models.PaletteListResponse](t, rec)
	if !reflect.DeepEqual(list.Palettes, []string{"gray", "html"}) {
		t.Errorf("palettes = %v", list.Palettes)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes?palette=gray", "", nil)
	if palette := decodeBody[models.Palette](t, rec); len(palette.Colors) != 8 {
		t.Errorf("gray palette = %+v", palette)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes?palette=crayons", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown palette status = %d, want 404", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes/color?palette=Gray&name=Dark%20Grey", "", nil)
	if result := decodeBody[models.PaletteColorResult](t, rec); result.Status != models.StatusOK || result.Value != "#a9a9a9" {
		t.Errorf("lookup = %+v", result)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes/color?palette=html", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("lookup without name status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes/name?palette=html&color=%23008080", "", nil)
	if result := decodeBody[models.PaletteColorResult](t, rec); result.Name != "Teal" {
		t.Errorf("name of #008080 = %+v", result)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes/name?palette=html&color=notacolor", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("name of invalid color status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes/closest?palette=html&color=%23fe0101", "", nil)
	if match := decodeBody[models.ClosestMatch](t, rec); match.Member.Name != "Red" {
		t.Errorf("closest = %+v", match)
	}
}

func TestOriginsAndRequestID(t *testing.T) {
	h := newTestApp(t, "")

	rec := doRequest(t, h, http.MethodGet, "/v1/palettes", "", map[string]string{"Origin": "https://evil.example.com"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("disallowed origin status = %d, want 403", rec.Code)
	}

	rec = doRequest(t, h, http.MethodGet, "/v1/palettes", "", map[string]string{"Origin": "https://colors.example.com"})
	if rec.Code != http.StatusOK || rec.Header().Get("Access-Control-Allow-Origin") != "https://colors.example.com" {
		t.Errorf("allowed origin = %d %v", rec.Code, rec.Header())
	}

	rec = doRequest(t, h, http.MethodOptions, "/v1/colors/rank", "", map[string]string{"Origin": "http://localhost:5173"})
	if rec.Code != http.StatusOK {
		t.Errorf("localhost preflight status = %d, want 200", rec.Code)
	}

	if _, err := uuid.Parse(rec.Header().Get(requestIDHeader)); err != nil {
		t.Errorf("generated request id %q is not a uuid", rec.Header().Get(requestIDHeader))
	}

	incoming := uuid.NewString()
	rec = doRequest(t, h, http.MethodGet, "/", "", map[string]string{requestIDHeader: incoming})
	if got := rec.Header().Get(requestIDHeader); got != incoming {
		t.Errorf("request id = %s, want %s", got, incoming)
	}

	rec = doRequest(t, h, http.MethodGet, "/", "", map[string]string{requestIDHeader: "not-a-uuid"})
	if got := rec.Header().Get(requestIDHeader); got == "not-a-uuid" {
		t.Error("invalid incoming request id was reused")
	}
}

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"https://colors.example.com"}
	tests := []struct {
		origin  string
		devMode bool
		want    bool
	}{
		{"https://colors.example.com", false, true},
		{"https://colors.example.com/palette", false, true},
		{"http://localhost:3000", true, true},
		{"http://localhost:3000", false, false},
		{"https://other.example.com", true, false},
	}
	for _, tt := range tests {
		if got := isAllowedOrigin(tt.origin, allowed, tt.devMode); got != tt.want {
			t.Errorf("isAllowedOrigin(%s, dev=%v) = %v, want %v", tt.origin, tt.devMode, got, tt.want)
		}
	}
}
