package server

// Config holds configuration for the HTTP server that serves the catalog.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the catalog. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowOrigins is the CORS allow-list for browser clients.
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
	// CacheSeconds is the max-age sent with catalog files.
	CacheSeconds int `mapstructure:"cache_seconds" default:"300"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
