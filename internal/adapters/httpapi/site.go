package httpapi

import (
	"context"
	"net/http"
	"time"

	"krushi/internal/application"
	"krushi/internal/domain/translation"
)

const apiVersion = "1.0.0"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	ok(w, http.StatusOK, h.msg(r.Context(), "api_running"), map[string]any{
		"version": apiVersion,
		"endpoints": map[string]string{
			"products":     "/api/products/get-products",
			"services":     "/api/services",
			"contact":      "/api/contact",
			"translations": "/api/translations/{lang}",
			"language":     "/api/language",
			"health":       "/health",
		},
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, database, key := http.StatusOK, "connected", "healthy"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("health: database ping failed", "error", err)
			status, database, key = http.StatusServiceUnavailable, "disconnected", "unhealthy"
		}
	}
	writeJSON(w, status, envelope{
		Success: status == http.StatusOK,
		Message: h.msg(r.Context(), key),
		Data: map[string]any{
			"uptime":    h.now().Sub(h.startedAt).Seconds(),
			"timestamp": h.now().UTC().Format(time.RFC3339),
			"database":  database,
		},
	})
}

type catalogResponse struct {
	Language     string         `json:"language"`
	Locale       string         `json:"locale"`
	Direction    string         `json:"direction"`
	Translations map[string]any `json:"translations,omitempty"`
}

// GET /api/translations/{lang}. Unknown languages get the default tree.
func (h *Handler) translations(w http.ResponseWriter, r *http.Request) {
	lang := r.PathValue("lang")
	if code, found := normalize(lang); found && h.catalog.Has(code) {
		lang = code
	} else {
		lang = h.catalog.DefaultLanguage()
	}
	ok(w, http.StatusOK, "", catalogResponse{
		Language:     lang,
		Locale:       translation.LocaleTag(lang),
		Direction:    translation.Direction(lang),
		Translations: h.catalog.Subtree(lang),
	})
}

type languageRequest struct {
	Language string `json:"language"`
}

// POST /api/language persists the visitor's choice in the preference cookie.
func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	pref := application.NewLanguagePreference(cookieStore{w: w, r: r}, supported, LanguageFromContext(r.Context()))
	lang, _ := normalize(req.Language)
	if err := pref.Set(lang); err != nil {
		h.fail(w, r, err)
		return
	}
	ctx := withLanguage(r.Context(), pref.Language())
	ok(w, http.StatusOK, h.msg(ctx, "language_updated"), catalogResponse{
		Language:  pref.Language(),
		Locale:    translation.LocaleTag(pref.Language()),
		Direction: translation.Direction(pref.Language()),
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, envelope{
		Success: false,
		Message: h.msg(r.Context(), "route_not_found"),
		Path:    r.URL.Path,
	})
}
