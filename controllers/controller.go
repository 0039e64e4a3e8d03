package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

const (
	requestTimeout = 15 * time.Second
	maxUploadSize  = 5 << 20
	maxBodySize    = 1 << 20
)

// decodeJSON reads a JSON body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		helper.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// writeServiceError maps service sentinel errors onto HTTP statuses. Anything
// unrecognised is logged and reported as a 500 with the fallback message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrExternalUnavailable):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		slog.Error(fallback, "method", r.Method, "path", r.URL.Path, "error", err)
		helper.WriteError(w, status, fallback)
		return
	}
	if status == http.StatusBadGateway {
		slog.Warn(fallback, "path", r.URL.Path, "error", err)
		helper.WriteError(w, status, fallback)
		return
	}
	helper.WriteError(w, status, err.Error())
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}
