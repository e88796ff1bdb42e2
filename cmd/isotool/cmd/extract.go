package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idemia/go-iso19794/pkg/face"
	"github.com/idemia/go-iso19794/pkg/finger"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Write one frame's compressed payload to a file",
	Long: `Write one frame's compressed image payload to a file, exactly as stored.

Example:
  isotool extract -f 1 -o print.wsq scan.fir`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("frame")
		output, _ := cmd.Flags().GetString("output")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		family, err := detectFamily(f)
		if err != nil {
			return err
		}

		var payload []byte
		switch family {
		case "FIR":
			r, err := finger.NewReader(f, finger.ReaderConfig{})
			if err != nil {
				return err
			}
			fr, err := r.Frame(index)
			if err != nil {
				return err
			}
			payload, err = r.ReadPayload(fr)
			if err != nil {
				return err
			}
		case "FAC":
			r, err := face.NewReader(f, face.ReaderConfig{})
			if err != nil {
				return err
			}
			fr, err := r.Frame(index)
			if err != nil {
				return err
			}
			payload, err = r.ReadPayload(fr)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(output, payload, 0600); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(payload), output)
		return nil
	},
}

func init() {
	extractCmd.Flags().IntP("frame", "f", 0, "Frame index to extract")
	extractCmd.Flags().StringP("output", "o", "payload.bin", "Output file for the payload bytes")
	rootCmd.AddCommand(extractCmd)
}
