// Package chunkcli implements the chunk command line application.
package chunkcli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v2"
	"go.minekube.com/collections/pkg/version"
)

// App returns the chunk command line application.
func App() *cli.App {
	app := cli.NewApp()
	app.Name = "chunk"
	app.Usage = "Split line-delimited input into fixed-size chunks."
	app.Description = `Reads lines from files or stdin and writes them as chunks of
a fixed number of lines. Input is read lazily, one chunk at a time.`
	app.Version = version.String()
	app.EnableBashCompletion = true

	// -v is taken by verbosity
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	var (
		debug     bool
		verbosity int
	)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   fmt.Sprintf("config file (default: ./%s)", defaultConfigFile),
			EnvVars: []string{"CHUNK_CONFIG"},
		},
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       "Enable debug mode and highest log verbosity",
			Destination: &debug,
			EnvVars:     []string{"CHUNK_DEBUG"},
		},
		&cli.IntFlag{
			Name:        "verbosity",
			Aliases:     []string{"v"},
			Usage:       "The higher the verbosity the more logs are shown",
			EnvVars:     []string{"CHUNK_VERBOSITY"},
			Destination: &verbosity,
		},
	}
	app.Before = func(c *cli.Context) error {
		log, err := newLogger(debug, verbosity)
		if err != nil {
			return cli.Exit(fmt.Errorf("error creating logger: %w", err), 1)
		}
		c.Context = logr.NewContext(c.Context, log)
		return nil
	}
	app.Commands = []*cli.Command{
		splitCommand(),
		configCommand(),
	}
	return app
}
