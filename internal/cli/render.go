package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LowerPlane/OpenCPX/postureio"
)

func renderCmd() *cobra.Command {
	var format string
	var indent bool
	var derive bool

	c := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a posture definition as a canonical document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			posture, err := postureio.Load(args[0])
			if err != nil {
				return err
			}
			if derive {
				posture.SetPosture(posture.CalculateOverallPosture())
			}

			var out []byte
			switch format {
			case "json":
				if indent {
					out, err = posture.ToJSONIndent()
				} else {
					out, err = posture.ToJSON()
				}
			case "yaml":
				out, err = posture.EncodeYAML()
			default:
				return fmt.Errorf("unsupported output format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	c.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	c.Flags().BoolVar(&derive, "derive", false, "replace compliance_posture with the value derived from framework statuses")
	return c
}
