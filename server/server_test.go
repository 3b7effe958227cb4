package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	treevol "github.com/bikuz/carbonapi-sub001"
)

func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(treevol.DefaultParameter(), treevol.DefaultBreakPolicy(), log)
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestVolumeRatioBrokenTop(t *testing.T) {
	s := newTestServer()
	w := post(t, s, "/api/volume-ratio", `{"diameter_p":25.4,"height_m":15,"height_p":20,"crown_class":6}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp["volume_ratio"], 0.)
	assert.Less(t, resp["volume_ratio"], 1.)
	assert.Equal(t, 15., resp["h"])
}

func TestVolumeRatioIntact(t *testing.T) {
	s := newTestServer()
	w := post(t, s, "/api/volume-ratio", `{"diameter_p":25.4,"height_m":18,"height_p":20,"crown_class":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1., resp["volume_ratio"])
}

func TestVolumeRatioInvalid(t *testing.T) {
	s := newTestServer()
	assert.Equal(t, http.StatusBadRequest, post(t, s, "/api/volume-ratio", `{"diameter_p":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, s, "/api/volume-ratio", `{"diameter_p":25.4,"height_p":1.1,"crown_class":6}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, s, "/api/volume-ratio", `not json`).Code)
}

func TestVolume(t *testing.T) {
	s := newTestServer()
	w := post(t, s, "/api/volume", `{"diameter_p":25.4,"height":20}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp["volume_m3"], .1)
	assert.Less(t, resp["volume_m3"], 1.)
}

func TestVolumeInvalidGeometry(t *testing.T) {
	s := newTestServer()
	assert.Equal(t, http.StatusBadRequest, post(t, s, "/api/volume", `{"diameter_p":25.4,"height":1.2}`).Code)
}

func TestTaper(t *testing.T) {
	s := newTestServer()
	w := post(t, s, "/api/taper", `{"diameter_p":25.4,"height":20,"step":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Heights   []float64 `json:"heights"`
		Diameters []float64 `json:"diameters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, len(resp.Heights), len(resp.Diameters))
	require.NotEmpty(t, resp.Heights)
	for i, d := range resp.Diameters {
		assert.Greater(t, d, 0., "sample %d", i)
	}
}
