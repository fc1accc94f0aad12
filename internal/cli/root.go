// Package cli implements the cpx command line tool: validate, render and
// serve OpenCPX posture definition files.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cpx",
		Short:        "cpx — work with OpenCPX compliance posture files",
		SilenceUsage: true,
	}

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(renderCmd())
	cmd.AddCommand(serveCmd())
	return cmd
}
