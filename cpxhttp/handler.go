// Package cpxhttp serves OpenCPX posture documents over net/http.
package cpxhttp

import (
	"net/http"

	cpx "github.com/LowerPlane/OpenCPX"
)

// Handler wraps a posture provider in an http.HandlerFunc. The provider is
// called once per request; its result is serialized as the canonical JSON
// document with the X-CPX-Version header set. Provider failures surface as
// a plain 500 through http.Error.
func Handler(provider cpx.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		posture, err := provider()
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		body, err := posture.ToJSON()
		if err != nil {
			http.Error(w, "Failed to serialize posture", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(cpx.VersionHeader, cpx.Version)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

// Register mounts the CPX handler on the mux at /cpx.
func Register(mux *http.ServeMux, provider cpx.Provider) {
	mux.HandleFunc(cpx.DefaultPath, Handler(provider))
}

// Middleware intercepts /cpx and delegates every other path to next.
func Middleware(provider cpx.Provider, next http.Handler) http.Handler {
	handler := Handler(provider)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == cpx.DefaultPath {
			handler(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
