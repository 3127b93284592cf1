package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "molembed",
	Short: "Embeddable molecular structure viewers and diagram galleries",
	Long: `Molembed turns directories of molecular structure files (mmCIF,
BinaryCIF, PDB, SMILES) into static HTML galleries with embedded 3D
viewers and 2D chemical diagrams. It also serves rendered fragments
over HTTP for embedding into notebooks and other documents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".molembed.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
