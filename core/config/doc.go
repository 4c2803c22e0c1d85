// Package config provides configuration management for the loader.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each field in `default` tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Content: content root, language and the folder layout of the data tree
//   - Output: output folder and cleaning policy
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket used by `publish`
//   - Database: snapshot database used by `load --store`
//   - Server: HTTP port used by `serve`
//
// Command-line flags override the loaded values.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Content.Root)
package config
