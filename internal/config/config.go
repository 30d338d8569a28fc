package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spectriclabs/hotcold/internal/colormap"
)

// Config holds the service settings. Values come from flags, then
// HOTCOLD_* environment variables, then the optional config file.
type Config struct {
	Host           string  `json:"host,omitempty" mapstructure:"host"`
	Port           int     `json:"port,omitempty" mapstructure:"port"`
	Debug          bool    `json:"debug,omitempty" mapstructure:"debug"`
	ConfigFile     string  `json:"config_file,omitempty" mapstructure:"config"`
	DefaultLUTSize int     `json:"default_lutsize,omitempty" mapstructure:"default-lutsize"`
	DefaultNeutral float64 `json:"default_neutral,omitempty" mapstructure:"default-neutral"`
	DefaultWeight  float64 `json:"default_weight,omitempty" mapstructure:"default-weight"`
	MaxLUTSize     int     `json:"max_lutsize,omitempty" mapstructure:"max-lutsize"`
	SwatchWidth    int     `json:"swatch_width,omitempty" mapstructure:"swatch-width"`
}

// NewFlagSet declares the command line flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("host", "i", "0.0.0.0", "Host where the server will run")
	fs.IntP("port", "p", 5056, "Port where the server will run")
	fs.BoolP("debug", "d", false, "Whether or not to enable debug logging")
	fs.StringP("config", "c", "", "Location of an optional YAML or JSON config file")
	fs.Int("default-lutsize", colormap.DefaultLUTSize, "Table size used when a request does not give one")
	fs.Float64("default-neutral", colormap.DefaultNeutral, "Neutral gray used when a request does not give one")
	fs.Float64("default-weight", colormap.DefaultWeight, "Bezier weight used when a request does not give one")
	fs.IntP("max-lutsize", "m", 65536, "Largest table size a request may ask for")
	fs.Int("swatch-width", 32, "Width in pixels of PNG swatches")
	return fs
}

// Load parses args into fs and merges the environment and config file.
// Flags given on the command line win over both.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	cfg := Config{}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return cfg, errors.Wrap(err, "binding flags")
	}
	v.SetEnvPrefix("hotcold")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "reading config file %s", file)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config")
	}
	return cfg, cfg.Validate()
}

// Validate checks that the defaults describe a buildable table.
func (c Config) Validate() error {
	if c.MaxLUTSize < colormap.MinLUTSize || c.MaxLUTSize > colormap.MaxLUTSize {
		return errors.Errorf("max-lutsize %d must be within [%d, %d]", c.MaxLUTSize, colormap.MinLUTSize, colormap.MaxLUTSize)
	}
	if c.SwatchWidth <= 0 {
		return errors.Errorf("swatch-width %d must be positive", c.SwatchWidth)
	}
	opts := c.Options(colormap.Bezier)
	if _, err := colormap.Build(opts); err != nil {
		return errors.Wrap(err, "default table settings")
	}
	return nil
}

// Options returns the default table options for an algorithm.
func (c Config) Options(a colormap.Algorithm) colormap.Options {
	opts := colormap.DefaultOptions(a)
	opts.LUTSize = c.DefaultLUTSize
	opts.Neutral = c.DefaultNeutral
	opts.Weight = c.DefaultWeight
	opts.MaxLUTSize = c.MaxLUTSize
	return opts
}
