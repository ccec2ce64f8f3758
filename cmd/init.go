package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"microsh.dev/microsh/core/config"
)

// initCmd writes a default configuration and creates the storage
// directory it names.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		osFs := afero.NewOsFs()
		if ok, _ := afero.Exists(osFs, cfgPath); ok {
			return fmt.Errorf("%s already exists, refusing to overwrite", cfgPath)
		}

		if err := config.WriteDefault(osFs, cfgPath); err != nil {
			return err
		}

		configuration, err := config.Load(osFs, cfgPath)
		if err != nil {
			return err
		}
		if configuration.StorageDir != "" {
			if err := os.MkdirAll(configuration.StorageDir, 0755); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
