package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for optional configuration fields.
const (
	DefaultTrackingMethod = "QAGENT"
	DefaultPageSize       = 1000
	DefaultRequestDelay   = 1 * time.Second
	DefaultLogDir         = "logs"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// setDefaults registers every key with viper. AutomaticEnv only binds
// environment variables for keys viper already knows, so required keys
// are registered too, with empty defaults.
func setDefaults(v *viper.Viper) {
	v.SetDefault("platform_url", "")
	v.SetDefault("login", "")
	v.SetDefault("password", "")
	v.SetDefault("headers", "")
	v.SetDefault("tracking_method", DefaultTrackingMethod)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("request_delay", DefaultRequestDelay)
	v.SetDefault("log_dir", DefaultLogDir)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
}
