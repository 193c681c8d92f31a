package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSandbox_LoadBeforeStart(t *testing.T) {
	s := NewSandbox(NullLogger())
	_, err := s.Load("<p>hi</p>")
	assert.ErrorIs(t, err, ErrSandboxNotStarted)
}

func TestSandbox_ServesSandboxedDocument(t *testing.T) {
	s := NewSandbox(NullLogger())
	s.baseURL = "http://sandbox.test"
	h := s.Handler()

	url, err := s.Load("<h1>Foo</h1>")
	require.NoError(t, err)
	assert.Equal(t, "http://sandbox.test/play/1", url)

	rec := get(t, h, "/play/1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>Foo</h1>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "sandbox")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-cache")
}

func TestSandbox_ReloadBumpsRevision(t *testing.T) {
	s := NewSandbox(NullLogger())
	s.baseURL = "http://sandbox.test"
	h := s.Handler()

	_, err := s.Load("same")
	require.NoError(t, err)
	url, err := s.Load("same")
	require.NoError(t, err)
	assert.Equal(t, "http://sandbox.test/play/2", url)

	rec := get(t, h, "/play/1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/play/2", rec.Header().Get("Location"))

	rec = get(t, h, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestSandbox_ClearRemovesDocument(t *testing.T) {
	s := NewSandbox(NullLogger())
	s.baseURL = "http://sandbox.test"
	h := s.Handler()

	_, err := s.Load("<p>x</p>")
	require.NoError(t, err)
	s.Clear()

	assert.Equal(t, http.StatusGone, get(t, h, "/play/1").Code)
	assert.Equal(t, http.StatusGone, get(t, h, "/").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/play/abc").Code)
}

func TestSandbox_StartServesOverLoopback(t *testing.T) {
	s := NewSandbox(NullLogger())
	require.NoError(t, s.Start("127.0.0.1:0"))
	defer s.Shutdown(context.Background())

	url, err := s.Load("<p>live</p>")
	require.NoError(t, err)

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<p>live</p>", string(body))
}
