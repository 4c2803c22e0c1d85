package config

import (
	"reflect"
	"strings"

	"scdb-loader/core/content"
	"scdb-loader/core/database"
	"scdb-loader/core/logger"
	"scdb-loader/core/server"
	"scdb-loader/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Content describes the input data tree.
	Content content.Config `mapstructure:"content"`
	// Output holds configuration for the emitted catalog.
	Output OutputConfig `mapstructure:"output"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for publishing the catalog (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the catalog snapshot database.
	Database database.Config `mapstructure:"database"`
	// Server holds configuration for serving the catalog over HTTP.
	Server server.Config `mapstructure:"server"`
}

// OutputConfig holds configuration for the output folder.
type OutputConfig struct {
	// Dir is the folder the JSON catalog and run logs are written to.
	Dir string `mapstructure:"dir" default:"output"`
	// Clean removes previous artifacts from Dir before a run.
	Clean bool `mapstructure:"clean" default:"true"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CONTENT_ROOT -> content.root)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
