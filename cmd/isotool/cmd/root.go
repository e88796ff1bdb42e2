package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isotool",
	Short: "Inspect and build ISO/IEC 19794 biometric image containers",
	Long: `isotool reads and writes ISO/IEC 19794 container files: face records
(19794-5, "FAC") and fingerprint/palmprint records (19794-4, "FIR").

The family is detected from the file's magic tag; the representation headers
are decoded per the container's declared version.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
