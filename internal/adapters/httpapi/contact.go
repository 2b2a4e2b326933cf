package httpapi

import (
	"net"
	"net/http"
	"strings"

	"krushi/internal/domain/contact"
	"krushi/internal/ports/input"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var fields contact.Fields
	if err := decode(w, r, &fields); err != nil {
		h.badRequest(w, r, err)
		return
	}
	c, err := h.contacts.SubmitContact(r.Context(), input.SubmitContact{
		Fields:    fields,
		Language:  LanguageFromContext(r.Context()),
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, h.msg(r.Context(), "contact_received"), c)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.ListContacts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list(w, contacts)
}

// clientIP prefers the first X-Forwarded-For hop, as set by the reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
