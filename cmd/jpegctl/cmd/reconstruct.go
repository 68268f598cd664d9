package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydicom/libjpeg.go/pkg/libjpeg"
)

// NewReconstructCmd creates the reconstruct cobra command
func NewReconstructCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "decode a JPEG file to PPM/PGM via the engine's reconstruct command",
		Long:  "Pass-through to the native reconstruct command: writes a PPM/PGM file and, with --alpha, a PGM alpha plane.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			colourspace, _ := cmd.Flags().GetInt("colourspace")
			alpha, _ := cmd.Flags().GetString("alpha")
			noUpsample, _ := cmd.Flags().GetBool("no-upsample")

			if in == "" || out == "" {
				return fmt.Errorf("both --in and --out are required")
			}

			return libjpeg.Reconstruct(in, out, libjpeg.ColourTransform(colourspace), alpha, !noUpsample)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("in", "", "JPEG file path to reconstruct")
	pf.String("out", "", "Output PPM/PGM path")
	pf.Int("colourspace", int(libjpeg.TransformYCbCr), "Colourspace (0=none, 1=YCbCr, 2=RCT, 3=freeform)")
	pf.String("alpha", "", "Also write decoded alpha channel data to this PGM path")
	pf.Bool("no-upsample", false, "Disable automatic upsampling")

	return cmd
}
