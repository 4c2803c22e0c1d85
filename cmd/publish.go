package cmd

import (
	"fmt"

	"scdb-loader/core/config"
	"scdb-loader/core/logger"
	"scdb-loader/core/storage"
	"scdb-loader/feature/catalog"

	"github.com/spf13/cobra"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload an existing catalog to object storage",
	Long:  `Uploads every JSON document in the output folder to the configured bucket and prefix, removing documents the catalog no longer contains.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("output") {
			cfg.Output.Dir, _ = cmd.Flags().GetString("output")
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		report, err := catalog.NewPublisher(client, cfg.Storage, logg).Publish(cmd.Context(), cfg.Output.Dir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Published %d documents to %s (%d stale removed)\n",
			len(report.Uploaded), cfg.Storage.Bucket, report.Removed)
		return nil
	},
}

func init() {
	publishCmd.Flags().String("output", "", "folder holding the JSON catalog")
	RootCmd.AddCommand(publishCmd)
}
