package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/insurance-crm/internal/domain"
	"github.com/heartmarshall/insurance-crm/internal/service/engine"
)

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []fieldErrorResponse `json:"fields,omitempty"`
}

// statusFor maps an engine result code to an HTTP status.
func statusFor(code engine.Code) int {
	switch code {
	case engine.CodeOK:
		return http.StatusOK
	case engine.CodeUnauthorized:
		return http.StatusUnauthorized
	case engine.CodeNotFound:
		return http.StatusNotFound
	case engine.CodeReferenceNotFound:
		return http.StatusUnprocessableEntity
	case engine.CodeValidationFailed:
		return http.StatusBadRequest
	case engine.CodeVersionConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeResult writes a successful result with status, rendering its data
// through render, or the failure envelope otherwise. A nil render writes no
// body.
func writeResult[T any](w http.ResponseWriter, res engine.Result[T], status int, render func(T) any) {
	if !res.OK {
		writeFailure(w, res.Code, res.Message, res.Fields)
		return
	}
	if render == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, render(res.Data))
}

func writeFailure(w http.ResponseWriter, code engine.Code, message string, fields []domain.FieldError) {
	resp := errorResponse{Code: code.String(), Message: message}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, fieldErrorResponse{Field: f.Field, Message: f.Message})
	}
	writeJSON(w, statusFor(code), resp)
}

func writeBadRequest(w http.ResponseWriter, field, message string) {
	writeFailure(w, engine.CodeValidationFailed, "invalid request",
		[]domain.FieldError{{Field: field, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a single JSON object from the body. It writes the error
// response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Code:    engine.CodeValidationFailed.String(),
				Message: "request body too large",
			})
			return false
		}
		writeBadRequest(w, "body", err.Error())
		return false
	}
	return true
}

// pathID parses the {name} path value as a UUID.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeBadRequest(w, name, "must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
