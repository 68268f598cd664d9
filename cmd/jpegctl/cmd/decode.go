package cmd

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pydicom/libjpeg.go/pkg/libjpeg"
)

// NewDecodeCmd creates the decode cobra command
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "decode a JPEG/JPEG-LS/JPEG-XT stream",
		Long:  "Decodes a compressed stream and writes the samples to --out: raw bytes, or PNG when the path ends in .png.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			outPath, _ := cmd.Flags().GetString("out")
			raw, _ := cmd.Flags().GetBool("raw")
			pi, _ := cmd.Flags().GetString("photometric-interpretation")

			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			if outPath == "" {
				return fmt.Errorf("output path is required. Use --out flag")
			}

			var opts []libjpeg.Option
			switch {
			case cmd.Flags().Changed("transform"):
				transform, _ := cmd.Flags().GetInt("transform")
				opts = append(opts, libjpeg.WithTransform(libjpeg.ColourTransform(transform)))
			case pi != "":
				t, err := libjpeg.SelectTransform(pi)
				if err != nil {
					return err
				}
				opts = append(opts, libjpeg.WithTransform(t))
			}

			if raw {
				data, params, err := libjpeg.DecodeBytes(filePath, opts...)
				if err != nil {
					return err
				}
				slog.InfoContext(ctx, "decoded",
					"rows", params.Rows, "columns", params.Columns,
					"components", params.Components, "precision", params.Precision)
				return os.WriteFile(outPath, data, 0o644)
			}

			frame, err := libjpeg.Decode(filePath, opts...)
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "decoded",
				"rows", frame.Rows, "columns", frame.Columns,
				"components", frame.Components, "precision", frame.Precision)

			if strings.HasSuffix(strings.ToLower(outPath), ".png") {
				img, err := frame.Image()
				if err != nil {
					return err
				}
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				return png.Encode(f, img)
			}
			return os.WriteFile(outPath, frame.Bytes(), 0o644)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "JPEG file path to decode")
	pf.StringP("out", "o", "", "Output path (.png for an image, anything else for raw samples)")
	pf.Int("transform", 0, "Colour transform (0=none, 1=RGB to YCbCr, 2=RCT, 3=freeform)")
	pf.String("photometric-interpretation", "", "DICOM (0028,0004) value used to pick the colour transform")
	pf.Bool("raw", false, "Write the undifferentiated sample bytes, never applying a colour transform")

	return cmd
}
