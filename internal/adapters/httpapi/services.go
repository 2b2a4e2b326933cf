package httpapi

import (
	"net/http"

	"krushi/internal/ports/input"
)

func (h *Handler) listOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.offerings.ListOfferings(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list(w, offerings)
}

func (h *Handler) getOffering(w http.ResponseWriter, r *http.Request) {
	offering, err := h.offerings.GetOffering(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", offering)
}

func (h *Handler) createOffering(w http.ResponseWriter, r *http.Request) {
	var cmd input.CreateOffering
	if err := decode(w, r, &cmd); err != nil {
		h.badRequest(w, r, err)
		return
	}
	offering, err := h.offerings.CreateOffering(r.Context(), LanguageFromContext(r.Context()), cmd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, h.msg(r.Context(), "service_created"), offering)
}
