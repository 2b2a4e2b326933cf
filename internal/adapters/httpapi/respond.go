package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"krushi/internal/domain"
)

const maxBodyBytes = 1 << 20

// envelope is the shape of every API response.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Count   *int              `json:"count,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
	Path    string            `json:"path,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func list[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &n, Data: items})
}

// decode reads a JSON body into dst, rejecting unknown trailing data.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOfferingNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// fail writes err as an error envelope. Domain errors carry a localized
// message; anything else is logged and reported as a server error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := envelope{Success: false}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Errors = verr.Fields
	}

	if code := domain.Code(err); code != "" && status != http.StatusInternalServerError {
		body.Message = h.msg(r.Context(), code)
	} else {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		body.Message = h.msg(r.Context(), "internal_error")
		if h.development {
			body.Error = err.Error()
		}
	}
	writeJSON(w, status, body)
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	body := envelope{Success: false, Message: h.msg(r.Context(), "bad_request")}
	if h.development && err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, http.StatusBadRequest, body)
}
