package draft

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() http.Handler {
	h := NewHandler(NewInMemoryStore(), slog.New(slog.DiscardHandler), nil)
	r := chi.NewRouter()
	r.Mount("/drafts", h.Routes())
	return r
}

func TestHandlerSaveThenLoad(t *testing.T) {
	srv := newTestHandler()

	put := httptest.NewRequest(http.MethodPut, "/drafts/employee-form-data-v1", strings.NewReader(`{"name":"Asha"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, put)
	require.Equal(t, http.StatusNoContent, rec.Code)

	get := httptest.NewRequest(http.MethodGet, "/drafts/employee-form-data-v1", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, get)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Asha"}`, rec.Body.String())
}

func TestHandlerLoadMissingDraft(t *testing.T) {
	srv := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/drafts/employee-work-list-v1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found","error_description":"no draft saved for this slot"}`, rec.Body.String())
}

func TestHandlerRejectsUnknownSlot(t *testing.T) {
	srv := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "/drafts/employee-form-data-v2", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerRejectsOversizedDraft(t *testing.T) {
	srv := newTestHandler()

	body := bytes.Repeat([]byte("a"), maxDraftBytes+1)
	req := httptest.NewRequest(http.MethodPut, "/drafts/employee-form-data-v1", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerClear(t *testing.T) {
	store := NewInMemoryStore()
	h := NewHandler(store, slog.New(slog.DiscardHandler), nil)
	r := chi.NewRouter()
	r.Mount("/drafts", h.Routes())

	require.NoError(t, store.Save(t.Context(), SlotEducation, []byte(`[]`)))

	req := httptest.NewRequest(http.MethodDelete, "/drafts/employee-education-list-v1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	get := httptest.NewRequest(http.MethodGet, "/drafts/employee-education-list-v1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, get)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
