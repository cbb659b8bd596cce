package chunkcli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.minekube.com/collections/pkg/configs"
	"go.minekube.com/collections/pkg/version"
)

// run runs the app with stdin and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := App()
	var out bytes.Buffer
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"chunk"}, args...))
	return out.String(), err
}

func TestApp_Flags(t *testing.T) {
	app := App()
	assert.Equal(t, version.String(), app.Version, "App version should match version package")

	flags := make(map[string]bool)
	for _, flag := range app.Flags {
		for _, name := range flag.Names() {
			if flags[name] {
				t.Errorf("Flag conflict detected: %s", name)
			}
			flags[name] = true
		}
	}
	for _, name := range []string{"config", "c", "debug", "d", "verbosity", "v"} {
		assert.True(t, flags[name], "flag %s should exist", name)
	}

	help, err := app.ToMarkdown()
	require.NoError(t, err)
	assert.Contains(t, help, "split")
	assert.Contains(t, help, "--verbosity")
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Equal(t, string(configs.DefaultConfigBytes), out)

	file := filepath.Join(t.TempDir(), "chunk.yml")
	_, err = run(t, "", "config", "--write", "--output", file)
	require.NoError(t, err)
	written, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigBytes, written)
}

func TestDefaultConfigFileMatchesDefaults(t *testing.T) {
	fromDefaults := viper.New()
	SetDefaults(fromDefaults)
	var want Config
	require.NoError(t, fromDefaults.Unmarshal(&want))

	fromFile := viper.New()
	fromFile.SetConfigType("yaml")
	require.NoError(t, fromFile.ReadConfig(bytes.NewReader(configs.DefaultConfigBytes)))
	var got Config
	require.NoError(t, fromFile.Unmarshal(&got))

	assert.Equal(t, want, got)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{Size: 3, Format: "json", Concurrency: 1, DistinctLimit: 10}
	}
	tests := []struct {
		name   string
		modify func(*Config)
		errs   int
		warns  int
	}{
		{"valid", func(*Config) {}, 0, 0},
		{"zero size", func(c *Config) { c.Size = 0 }, 1, 0},
		{"negative size", func(c *Config) { c.Size = -2 }, 1, 0},
		{"unknown format", func(c *Config) { c.Format = "xml" }, 1, 0},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, 1, 0},
		{"negative distinct limit", func(c *Config) { c.DistinctLimit = -1 }, 1, 0},
		{"unbounded distinct", func(c *Config) { c.Distinct = true; c.DistinctLimit = 0 }, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			warns, errs := c.Validate()
			assert.Len(t, errs, tt.errs)
			assert.Len(t, warns, tt.warns)
		})
	}

	_, errs := (*Config)(nil).Validate()
	assert.Len(t, errs, 1)
}
