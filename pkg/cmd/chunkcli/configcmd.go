package chunkcli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.minekube.com/collections/pkg/configs"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Output default configuration file",
		Description: `Output the default configuration file to stdout or a file.
You can redirect to a file or use the --write flag:

	chunk config > chunk.yml
	chunk config --write              # Writes to chunk.yml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write config to chunk.yml instead of stdout",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "File written by --write",
				Value: defaultConfigFile,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("write") {
				outputFile := c.String("output")
				err := os.WriteFile(outputFile, configs.DefaultConfigBytes, 0644)
				if err != nil {
					return cli.Exit(fmt.Errorf("error writing config to %q: %w", outputFile, err), 1)
				}
				_, _ = fmt.Fprintf(c.App.ErrWriter, "Configuration written to %s\n", outputFile)
				return nil
			}

			_, err := c.App.Writer.Write(configs.DefaultConfigBytes)
			if err != nil {
				return cli.Exit(fmt.Errorf("error writing config: %w", err), 1)
			}
			return nil
		},
	}
}
