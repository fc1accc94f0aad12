// Package cpxgin serves OpenCPX posture documents from a gin engine.
package cpxgin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cpx "github.com/LowerPlane/OpenCPX"
)

// Handler wraps a posture provider in a gin.HandlerFunc. Provider failures
// are attached to the context with c.Error, gin's native error path, and
// the request is aborted with a 500.
func Handler(provider cpx.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		posture, err := provider()
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		body, err := posture.ToJSON()
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Header(cpx.VersionHeader, cpx.Version)
		c.Data(http.StatusOK, "application/json", body)
	}
}

// Register mounts the CPX endpoint at GET /cpx.
func Register(r gin.IRouter, provider cpx.Provider) {
	r.GET(cpx.DefaultPath, Handler(provider))
}
