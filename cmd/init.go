package cmd

import (
	"github.com/spf13/cobra"

	"github.com/molembed/molembed/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize molembed configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure molembed for your project and generates a .molembed.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
