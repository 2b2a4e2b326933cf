package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krushi/internal/domain/contact"
	"krushi/internal/ports/output"
)

func TestSubmitContactSuccess(t *testing.T) {
	var got contact.Fields
	var lang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		lang = r.Header.Get("Accept-Language")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Thank you for contacting us!","data":{"_id":"c1"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/", time.Second, "mr")
	fields := contact.Fields{Name: "Jo", Email: "a@b.com", Subject: "Hi!", Message: "This is a test message."}
	res, err := c.SubmitContact(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, "Thank you for contacting us!", res.Message)
	assert.Equal(t, fields, got)
	assert.Equal(t, "mr", lang)
}

func TestSubmitContactRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"name":"Name is required"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, "").SubmitContact(context.Background(), contact.Fields{})
	var serr *output.SubmissionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadRequest, serr.Status)
	assert.Equal(t, "Validation failed", serr.Message)
	assert.Equal(t, "Name is required", serr.Fields["name"])
}

func TestSubmitContactNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, "").SubmitContact(context.Background(), contact.Fields{})
	var serr *output.SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadGateway, serr.Status)
	assert.Empty(t, serr.Message)
}

func TestSubmitContactTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL, time.Second, "").SubmitContact(context.Background(), contact.Fields{})
	require.Error(t, err)
	var serr *output.SubmissionError
	assert.False(t, errors.As(err, &serr))
}

func TestTranslations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translations/mr", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"language":"mr","locale":"mr-IN","direction":"ltr","translations":{"nav":{"home":"मुख्यपृष्ठ"}}}}`))
	}))
	defer srv.Close()

	cat, err := New(srv.URL, time.Second, "").Translations(context.Background(), "mr")
	require.NoError(t, err)
	assert.Equal(t, "mr-IN", cat.Locale)
	assert.Equal(t, "मुख्यपृष्ठ", cat.Translations["nav"].(map[string]any)["home"])
}
