package httpext

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups client tunables. Values are taken from environment
// variables with the prefix "HTTPEXT_". Example: HTTPEXT_TIMEOUT=5s .
type Config struct {
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
	UserAgent string        `envconfig:"USER_AGENT" default:""`
}

// LoadConfig populates Config from environment variables (prefix HTTPEXT_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("HTTPEXT", &c)
}

// Options converts the config into constructor options for New.
func (c Config) Options() []Option {
	opts := []Option{WithHTTPTimeout(c.Timeout)}
	if c.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	if c.UserAgent != "" {
		opts = append(opts, WithUserAgent(c.UserAgent))
	}
	return opts
}
