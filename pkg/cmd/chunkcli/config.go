package chunkcli

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.minekube.com/collections/pkg/chunk"
)

// Config is the chunk command config for reading in files and environment variables with Viper.
type Config struct {
	// Number of lines per chunk.
	Size int
	// Output format, one of Formats.
	Format string
	// Color chunk headers of the text format.
	Color bool
	// Drop blank lines before splitting.
	SkipEmpty bool
	// Drop repeated lines before splitting.
	Distinct bool
	// Maximum number of lines remembered by Distinct, 0 for all.
	DistinctLimit int
	// Number of input files split concurrently.
	Concurrency int
}

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml"}

const defaultConfigFile = "chunk.yml"

// SetDefault is an interface to abstract setting Viper defaults.
type SetDefault interface {
	SetDefault(key string, value interface{})
}

// SetDefaults sets Config defaults to use with Viper.
func SetDefaults(i SetDefault) {
	i.SetDefault("size", chunk.DefaultSize)
	i.SetDefault("format", "text")
	i.SetDefault("color", true)
	i.SetDefault("skipEmpty", false)
	i.SetDefault("distinct", false)
	i.SetDefault("distinctLimit", 10000)
	i.SetDefault("concurrency", 4)
}

// Validate returns warnings for questionable and errors for invalid settings.
func (c *Config) Validate() (warns []error, errs []error) {
	e := func(m string, args ...interface{}) { errs = append(errs, fmt.Errorf(m, args...)) }
	w := func(m string, args ...interface{}) { warns = append(warns, fmt.Errorf(m, args...)) }
	if c == nil {
		e("config must not be nil")
		return
	}

	if c.Size < 1 {
		e("Invalid size %d, must be at least 1", c.Size)
	}
	if !slices.Contains(Formats, c.Format) {
		e("Unknown format %q, must be one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.Concurrency < 1 {
		e("Invalid concurrency %d, must be at least 1", c.Concurrency)
	}
	if c.DistinctLimit < 0 {
		e("Invalid distinctLimit %d, must not be negative", c.DistinctLimit)
	}
	if c.Distinct && c.DistinctLimit == 0 {
		w("distinct is enabled without distinctLimit, every line of an input is kept in memory")
	}
	return
}

// loadConfig reads the config file, CHUNK_ environment variables
// and the flags set on the command, in increasing precedence.
func loadConfig(c *cli.Context) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("CHUNK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	file := c.String("config")
	v.SetConfigFile(defaultConfigFile)
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		if file != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %q: %w", v.ConfigFileUsed(), err)
		}
	}

	for flag, key := range map[string]string{
		"size":           "size",
		"format":         "format",
		"no-color":       "color",
		"skip-empty":     "skipEmpty",
		"distinct":       "distinct",
		"distinct-limit": "distinctLimit",
		"concurrency":    "concurrency",
	} {
		if !c.IsSet(flag) {
			continue
		}
		switch flag {
		case "no-color":
			v.Set(key, !c.Bool(flag))
		default:
			v.Set(key, c.Value(flag))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return &cfg, nil
}
