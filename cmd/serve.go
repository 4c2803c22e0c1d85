package cmd

import (
	"fmt"

	"scdb-loader/core/config"
	"scdb-loader/core/logger"
	"scdb-loader/core/server"
	"scdb-loader/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON catalog over HTTP",
	Long:  `Serves the documents in the output folder read-only, for local frontend development.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("output") {
			cfg.Output.Dir, _ = cmd.Flags().GetString("output")
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetString("port")
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		app := server.New(cfg.Server, cfg.Output.Dir, catalog.ArtifactFiles(), logg)

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("dir", cfg.Output.Dir))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().String("output", "", "folder holding the JSON catalog")
	serveCmd.Flags().String("port", "", "port to listen on")
	RootCmd.AddCommand(serveCmd)
}
