package generate

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"git.imaxinacion.net/aibox/staticenum"
)

// ErrNoTypes is returned when no enumeration type was requested.
var ErrNoTypes = errors.New("enumgen: no types requested")

// Config is the generator configuration. Values are layered by LoadConfig:
// defaults, then an optional config file, then ENUMGEN_* environment
// variables, then explicit overrides (command-line flags).
type Config struct {
	// Types lists the enumeration type names to generate namers for.
	Types []string `mapstructure:"types"`
	// Patterns are the package patterns to load; exactly one package must match.
	Patterns []string `mapstructure:"patterns"`
	// Output is the file to write. Empty means <type>_enum.go next to the package sources.
	Output string `mapstructure:"output"`
	// Tags are build tags applied when loading the package.
	Tags []string `mapstructure:"tags"`
	// MaxWindowSize and Alignment mirror staticenum.Config and are used to
	// report constants the runtime window would not see.
	MaxWindowSize int `mapstructure:"max_window_size"`
	Alignment     int `mapstructure:"alignment"`
	// Strict turns window misses into a generation failure.
	Strict bool `mapstructure:"strict"`
}

// WindowConfig returns the runtime configuration the generated code is
// checked against.
func (c *Config) WindowConfig() staticenum.Config {
	return staticenum.Config{MaxWindowSize: c.MaxWindowSize, Alignment: c.Alignment}
}

// Validate rejects configurations that cannot produce a usable file.
func (c *Config) Validate() error {
	if len(c.Types) == 0 {
		return ErrNoTypes
	}
	if err := c.WindowConfig().Validate(); err != nil {
		return fmt.Errorf("enumgen: %w", err)
	}
	return nil
}

// LoadConfig builds the configuration from path (optional, any format viper
// understands by extension), the environment and overrides.
func LoadConfig(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	v.SetDefault("types", []string{})
	v.SetDefault("patterns", []string{"."})
	v.SetDefault("output", "")
	v.SetDefault("tags", []string{})
	v.SetDefault("max_window_size", staticenum.DefaultMaxWindowSize)
	v.SetDefault("alignment", 0)
	v.SetDefault("strict", false)

	v.SetEnvPrefix("ENUMGEN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
