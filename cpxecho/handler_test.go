package cpxecho

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpx "github.com/LowerPlane/OpenCPX"
)

func TestHandler_ServesPostureDocument(t *testing.T) {
	e := echo.New()
	Register(e, func() (*cpx.Posture, error) {
		fw, err := cpx.NewFramework("ISO27001", cpx.StatusCompliant, 1.0)
		if err != nil {
			return nil, err
		}
		return cpx.NewPosture().AddFramework(fw).SetPosture(cpx.PostureCompliant), nil
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-CPX-Version"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "compliant", doc["compliance_posture"])
}

func TestHandler_ProviderErrorGoesToEchoErrorHandler(t *testing.T) {
	e := echo.New()
	providerErr := errors.New("posture backend down")
	Register(e, func() (*cpx.Posture, error) {
		return nil, providerErr
	})

	var seen error
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		seen = err
		_ = c.NoContent(http.StatusInternalServerError)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The provider error reaches the host framework unwrapped.
	assert.Same(t, providerErr, seen)
}

func TestHandler_ProviderCalledPerRequest(t *testing.T) {
	calls := 0
	e := echo.New()
	Register(e, func() (*cpx.Posture, error) {
		calls++
		return cpx.NewPosture(), nil
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cpx", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, calls)
}
