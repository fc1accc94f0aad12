package cpxchi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpx "github.com/LowerPlane/OpenCPX"
)

func provider() (*cpx.Posture, error) {
	fw, err := cpx.NewFramework("SOC2", cpx.StatusPartial, 0.6)
	if err != nil {
		return nil, err
	}
	return cpx.NewPosture().AddFramework(fw), nil
}

func TestMount_ServesPosture(t *testing.T) {
	r := chi.NewRouter()
	Mount(r, provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-CPX-Version"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "unknown", doc["compliance_posture"])
}

func TestMount_OnlyGET(t *testing.T) {
	r := chi.NewRouter()
	Mount(r, provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cpx", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutes_StandaloneRouter(t *testing.T) {
	r := Routes(provider)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
