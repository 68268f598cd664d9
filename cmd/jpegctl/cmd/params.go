package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydicom/libjpeg.go/pkg/libjpeg"
)

// NewParamsCmd creates the params cobra command
func NewParamsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "print JPEG image parameters without decoding",
		Long:  "Reads the stream headers and prints rows, columns, component count and precision as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}

			params, err := libjpeg.GetParameters(filePath)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(params, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "JPEG file path to inspect")

	return cmd
}
