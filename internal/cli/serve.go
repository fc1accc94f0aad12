package cli

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	cpx "github.com/LowerPlane/OpenCPX"
	"github.com/LowerPlane/OpenCPX/cpxhttp"
	"github.com/LowerPlane/OpenCPX/postureio"
)

func serveCmd() *cobra.Command {
	var addr string
	var derive bool

	c := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a posture definition file at /cpx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			// Fail fast on an unreadable or invalid file, then re-read per
			// request so edits show up live.
			if _, err := postureio.Load(path); err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			fileProvider := postureio.Provider(path)

			var provider cpx.Provider = func() (*cpx.Posture, error) {
				posture, err := fileProvider()
				if err != nil {
					logger.Error("posture provider failed", "file", path, "error", err)
					return nil, err
				}
				if derive {
					posture.SetPosture(posture.CalculateOverallPosture())
				}
				return posture, nil
			}

			mux := http.NewServeMux()
			cpxhttp.Register(mux, provider)

			logger.Info("serving posture", "addr", addr, "path", cpx.DefaultPath, "file", path)
			return http.ListenAndServe(addr, mux)
		},
	}

	c.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	c.Flags().BoolVar(&derive, "derive", false, "serve the posture derived from framework statuses")
	return c
}
