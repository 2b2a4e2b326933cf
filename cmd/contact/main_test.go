package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeAPI(t *testing.T, status int, message string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/translations/{lang}", func(w http.ResponseWriter, r *http.Request) {
		lang := r.PathValue("lang")
		tree := map[string]any{"contact": map[string]any{"form": map[string]any{"name": "Full Name *"}}}
		if lang == "mr" {
			tree = map[string]any{"contact": map[string]any{"form": map[string]any{
				"name":       "पूर्ण नाव *",
				"fix_errors": "कृपया वरील त्रुटी दुरुस्त करा.",
			}}}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"language": lang, "translations": tree},
		})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": status < 300, "message": message})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Setenv("API_URL", srv.URL+"/api")
	return srv
}

func TestRunSubmitsValidForm(t *testing.T) {
	fakeAPI(t, http.StatusCreated, "Thank you for contacting us!")

	var out bytes.Buffer
	code := run([]string{"-name", "Jo", "-email", "a@b.com", "-subject", "Hi!", "-message", "This is a test message."}, &out)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "✅ Thank you for contacting us!")
}

func TestRunReportsFieldErrorsInMarathi(t *testing.T) {
	fakeAPI(t, http.StatusCreated, "unused")

	var out bytes.Buffer
	code := run([]string{"-lang", "mr", "-name", "J", "-email", "a@b.com", "-subject", "Hi!", "-message", "This is a test message."}, &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "❌ कृपया वरील त्रुटी दुरुस्त करा.")
	assert.Contains(t, out.String(), "पूर्ण नाव:")
}

func TestRunShowsServerMessageOnFailure(t *testing.T) {
	fakeAPI(t, http.StatusInternalServerError, "Server is busy")

	var out bytes.Buffer
	code := run([]string{"-name", "Jo", "-email", "a@b.com", "-subject", "Hi!", "-message", "This is a test message."}, &out)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "❌ Server is busy")
}

func TestRunWithoutFieldsPrintsUsage(t *testing.T) {
	fakeAPI(t, http.StatusCreated, "unused")

	var out bytes.Buffer
	code := run(nil, &out)
	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "usage: contact")
	assert.Contains(t, out.String(), "-email")
}
