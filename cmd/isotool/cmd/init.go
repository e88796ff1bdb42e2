package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idemia/go-iso19794/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the isotool configuration file with its defaults",
	Long: `Write the isotool configuration file with its defaults.

The file holds per-user defaults the build command substitutes when a
container descriptor leaves a field unset: finger scale units, sampling
rates and bit depth, the face schema version, and the output directory.

Example:
  isotool init
  isotool init --config ./isotool.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", path)
			return nil
		}
		if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("config", "", "Configuration path (default: the per-user location)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}
