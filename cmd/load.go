package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"scdb-loader/core/config"
	"scdb-loader/core/database"
	"scdb-loader/core/logger"
	"scdb-loader/core/storage"
	"scdb-loader/feature/catalog"
	"scdb-loader/feature/pipeline"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load extracted game data and write the JSON catalog",
	Long: `Runs every loader in dependency order against the content root and writes
one JSON document per index into the output folder. A loader-<timestamp>.log
run log and a missing_shops-<timestamp>.log are written next to the documents.`,
	Example: `  scdb load --input /data/sc/3.23 --output ./output
  scdb load --input /data/sc/3.23 --output ./output --ships-only`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.String("input", "", "path to the extracted game data (content root)")
	f.String("output", "", "folder the JSON catalog is written to")
	f.String("language", "", "localization language folder")
	f.Bool("ships-only", false, "load ships and vehicles only, keep existing output")
	f.Bool("keep-output", false, "do not clean the output folder first")
	f.Bool("publish", false, "upload the catalog to object storage after the run")
	f.Bool("store", false, "write a relational snapshot of the catalog to the database")
	RootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	started := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Content.Root, _ = flags.GetString("input")
	}
	if flags.Changed("output") {
		cfg.Output.Dir, _ = flags.GetString("output")
	}
	if flags.Changed("language") {
		cfg.Content.Language, _ = flags.GetString("language")
	}
	shipsOnly, _ := flags.GetBool("ships-only")
	keepOutput, _ := flags.GetBool("keep-output")
	publish, _ := flags.GetBool("publish")
	snapshot, _ := flags.GetBool("store")

	if cfg.Content.Root == "" {
		return errors.New("no content root: pass --input or set CONTENT_ROOT")
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	dir := cfg.Output.Dir
	if err := catalog.PrepareDir(dir, cfg.Output.Clean && !keepOutput && !shipsOnly); err != nil {
		return err
	}

	stamp := started.Format("20060102150405")
	runLog, closeRun, err := logger.WithFile(logg, filepath.Join(dir, "loader-"+stamp+".log"))
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer closeRun()
	runLog = runLog.With(zap.String("run_id", uuid.NewString()))

	missing, closeMissing, err := logger.NewLineLog(filepath.Join(dir, "missing_shops-"+stamp+".log"))
	if err != nil {
		return fmt.Errorf("failed to open missing shops log: %w", err)
	}
	defer closeMissing()
	missing.Info("Loader Starting: " + started.Format("02 Jan 2006 15:04:05"))

	opts := pipeline.Options{
		Content:   cfg.Content,
		ShipsOnly: shipsOnly,
		Emitter:   catalog.NewEmitter(dir, runLog),
		Logger:    runLog,
		Missing:   missing,
	}

	if snapshot {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		store := catalog.NewStore(db, runLog)
		if err := store.Migrate(); err != nil {
			return err
		}
		opts.Store = store
	}

	runLog.Info("Loader starting",
		zap.String("input", cfg.Content.Root),
		zap.String("output", dir),
		zap.String("language", cfg.Content.Language),
		zap.Bool("ships_only", shipsOnly))

	res, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if publish {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		if _, err := catalog.NewPublisher(client, cfg.Storage, runLog).Publish(ctx, dir); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Finished!")
	fmt.Fprint(out, res.Summary)
	return nil
}
