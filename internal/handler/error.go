package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/citymart/storefront/internal/domain"
	"github.com/citymart/storefront/internal/middleware"
	"github.com/citymart/storefront/internal/telemetry"
)

// ============================================================================
// JSON RESPONSE HELPERS
// ============================================================================
//
// All API handlers respond through these helpers so that error payloads,
// status mapping, logging, and Sentry capture stay consistent.

// errorBody is the JSON error envelope returned to clients.
type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondJSON writes v as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// RespondError writes a domain error as a JSON error response.
// Validation errors include a per-field message map. Internal errors are
// logged and reported to Sentry; the client sees only the generic message.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		code = domain.EINVALID
		message = "Validation failed"
	}

	status := ErrorCodeToHTTPStatus(code)

	body := errorBody{
		Code:    code,
		Message: message,
	}
	if verr != nil {
		body.Fields = verr.Fields
	}

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("request failed", attrs...)
		telemetry.CaptureErrorFromContext(r.Context(), err, map[string]interface{}{
			"path":   r.URL.Path,
			"method": r.Method,
		})
	} else {
		logger.Info("request rejected", attrs...)
	}

	RespondJSON(w, status, map[string]errorBody{"error": body})
}

// DecodeJSON decodes a JSON request body into dst.
// Returns an EINVALID domain error on malformed input.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Errorf(domain.EINVALID, "", "Request body is required")
		}
		return domain.Errorf(domain.EINVALID, "", "Invalid request body: %v", err)
	}
	return nil
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.ECONFLICT:
		return http.StatusConflict // 409
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests // 429
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	case domain.ENOTIMPL:
		return http.StatusNotImplemented // 501
	case domain.ETIMEOUT:
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}
