// Package cpxchi mounts the OpenCPX endpoint on a chi router.
package cpxchi

import (
	"github.com/go-chi/chi/v5"

	cpx "github.com/LowerPlane/OpenCPX"
	"github.com/LowerPlane/OpenCPX/cpxhttp"
)

// Mount registers the CPX endpoint at /cpx on an existing router.
func Mount(r chi.Router, provider cpx.Provider) {
	r.Get(cpx.DefaultPath, cpxhttp.Handler(provider))
}

// Routes returns a standalone router serving only the CPX endpoint, for
// hosts that mount sub-routers.
func Routes(provider cpx.Provider) chi.Router {
	r := chi.NewRouter()
	Mount(r, provider)
	return r
}
