package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alice","extra":1}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Alice", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{name"))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "Horário já foi agendado.")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Horário já foi agendado.", body.Error)
}

func TestRespondMessage(t *testing.T) {
	w := httptest.NewRecorder()
	RespondMessage(w, http.StatusCreated, "ok", "42")
	assert.JSONEq(t, `{"message":"ok","id":"42"}`, w.Body.String())

	w = httptest.NewRecorder()
	RespondMessage(w, http.StatusOK, "ok", "")
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestRespondStatuses(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		want    int
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "x") }, http.StatusBadRequest},
		{"unauthorized", func(w http.ResponseWriter) { RespondUnauthorized(w, "x") }, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter) { RespondForbidden(w, "x") }, http.StatusForbidden},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "x") }, http.StatusNotFound},
		{"timeout", RespondTimeout, http.StatusGatewayTimeout},
		{"internal", RespondInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.respond(w)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}
