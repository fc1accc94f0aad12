package cpxgin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpx "github.com/LowerPlane/OpenCPX"
)

func newEngine(provider cpx.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, provider)
	return r
}

func TestHandler_ServesPostureDocument(t *testing.T) {
	r := newEngine(func() (*cpx.Posture, error) {
		return cpx.NewPosture().SetPosture(cpx.PostureNonCompliant), nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1", rec.Header().Get("X-CPX-Version"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "non_compliant", doc["compliance_posture"])
}

func TestHandler_ProviderErrorAborts(t *testing.T) {
	r := newEngine(func() (*cpx.Posture, error) {
		return nil, errors.New("posture backend down")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_ProviderCalledPerRequest(t *testing.T) {
	calls := 0
	r := newEngine(func() (*cpx.Posture, error) {
		calls++
		return cpx.NewPosture(), nil
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, calls)
}
