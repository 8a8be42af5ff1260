package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Errorf("can't marshal the given payload: %w", err))
		body, _ = json.Marshal(errorResponse{Error: err.Error()})
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err = w.Write(body); err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respond(w, code, errorResponse{Error: err.Error()})
}

var (
	errNotFound         = errors.New("resource not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

// NotFoundHandler answers unmatched routes with a JSON 404.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondErr(w, http.StatusNotFound, errNotFound)
}

// MethodNotAllowedHandler answers routes matched with the wrong method with a JSON 405.
func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	respondErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
}
