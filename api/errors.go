package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/color-game/ranker/colormath"
	"github.com/color-game/ranker/datastore"
	"github.com/color-game/ranker/ranker"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
	RequestID        string `json:"requestId,omitempty"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrTooManyColors = fmt.Errorf("too many colors in one ranking request")

func writeHandlerError(w http.ResponseWriter, r *http.Request, status int, handlerErr HandlerError) {
	handlerErr.RequestID = requestIDFromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(handlerErr)
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, r, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      "Invalid Authentication",
		PossibleSolution: "Check your headers and ensure you're submitting a valid token",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requirePostMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodPost)
	writeHandlerError(w, r, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Post Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use POST method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requireGetMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodGet)
	writeHandlerError(w, r, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "GET Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use GET method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, r, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requestTooLarge(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, r, http.StatusRequestEntityTooLarge, HandlerError{
		ErrorName:        "Request Too Large",
		Description:      err.Error(),
		PossibleSolution: "Send fewer colors per request",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, r, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, r, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

// colorError maps errors from the color engine and palette store to a
// response
func (app *Application) colorError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidColor    *colormath.InvalidColorError
		invalidShape    *ranker.InvalidShapeError
		unknownProperty *colormath.UnknownPropertyError
		unknownMetric   *colormath.UnknownMetricError
		notFound        datastore.NotFoundError
	)

	status := http.StatusBadRequest
	handlerErr := HandlerError{
		Description: err.Error(),
		CallerInfo:  getCallerInfo(),
	}

	switch {
	case errors.As(err, &invalidColor):
		handlerErr.ErrorName = "Invalid Color"
		handlerErr.PossibleSolution = "Use #rrggbb hex strings or packed rgb numbers between 0 and 16777215"
	case errors.As(err, &invalidShape):
		handlerErr.ErrorName = "Invalid Shape"
		handlerErr.PossibleSolution = "Send one color per element or single-value rows"
	case errors.As(err, &unknownProperty):
		handlerErr.ErrorName = "Unknown Property"
		handlerErr.PossibleSolution = "Sort by a hex color or one of the canonical properties"
	case errors.As(err, &unknownMetric):
		handlerErr.ErrorName = "Unknown Metric"
		handlerErr.PossibleSolution = "Use one of rgb, lab or hsl"
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		handlerErr.ErrorName = "Not Found"
		handlerErr.PossibleSolution = "Check the palette and color names against GET /v1/palettes"
	default:
		status = http.StatusInternalServerError
		handlerErr.ErrorName = "Internal Server Error"
		handlerErr.PossibleSolution = "Internal Server Error requiring support"
	}

	writeHandlerError(w, r, status, handlerErr)
}
