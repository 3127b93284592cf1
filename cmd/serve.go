package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/molembed/molembed/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendered gallery with the fragment and diagram APIs",
	Long: `Starts a local HTTP server for the rendered gallery. Besides the static
pages, the server exposes POST /api/fragment for viewer fragments,
POST /api/diagram for PNG diagram rendering, and GET /ws/events for
streaming viewer lifecycle events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: gallery dir %s does not exist. Run `molembed render` first.\n", cfg.OutputDir)
		}

		if open, _ := cmd.Flags().GetBool("open"); open {
			go openBrowser("http://" + cfg.Server.Addr)
		}

		fmt.Printf("Serving gallery at http://%s\n", cfg.Server.Addr)
		fmt.Println("Press Ctrl+C to stop.")

		srv := server.New(server.Config{
			Addr:           cfg.Server.Addr,
			GalleryDir:     cfg.OutputDir,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}, nil)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the gallery in the default browser")
	rootCmd.AddCommand(serveCmd)
}
