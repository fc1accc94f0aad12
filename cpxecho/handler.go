// Package cpxecho serves OpenCPX posture documents from an echo instance.
package cpxecho

import (
	"net/http"

	"github.com/labstack/echo/v4"

	cpx "github.com/LowerPlane/OpenCPX"
)

// Handler wraps a posture provider in an echo.HandlerFunc. Provider
// failures are returned unmodified, leaving the response to echo's
// HTTPErrorHandler.
func Handler(provider cpx.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		posture, err := provider()
		if err != nil {
			return err
		}

		body, err := posture.ToJSON()
		if err != nil {
			return err
		}

		c.Response().Header().Set(cpx.VersionHeader, cpx.Version)
		return c.JSONBlob(http.StatusOK, body)
	}
}

// Register mounts the CPX endpoint at GET /cpx.
func Register(e *echo.Echo, provider cpx.Provider) {
	e.GET(cpx.DefaultPath, Handler(provider))
}
