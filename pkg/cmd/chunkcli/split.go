package chunkcli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/rs/xid"
	"github.com/urfave/cli/v2"
	"go.minekube.com/collections/pkg/chunk"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

// maxLineSize is the longest line the split command accepts.
const maxLineSize = 1 << 20

func splitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Split lines of files or stdin into chunks",
		ArgsUsage: "[file...]",
		Description: `Split every input into chunks of --size lines and write one record per chunk.
Reads stdin if no file or "-" is given. Multiple files are split concurrently
and written in argument order.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "Number of lines per chunk",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored chunk headers",
			},
			&cli.BoolFlag{
				Name:  "skip-empty",
				Usage: "Drop blank lines",
			},
			&cli.BoolFlag{
				Name:  "distinct",
				Usage: "Drop repeated lines",
			},
			&cli.IntFlag{
				Name:  "distinct-limit",
				Usage: "Maximum number of lines remembered by --distinct, 0 for all",
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Aliases: []string{"j"},
				Usage:   "Number of files split concurrently",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err, 1)
			}
			log := logr.FromContextOrDiscard(c.Context)
			warns, errs := cfg.Validate()
			for _, w := range warns {
				log.Info("config validation warn", "warn", w.Error())
			}
			if len(errs) != 0 {
				return cli.Exit(fmt.Errorf("config validation error: %w", errors.Join(errs...)), 1)
			}

			files := c.Args().Slice()
			if len(files) == 0 {
				files = []string{stdinName}
			}
			s := &splitter{
				cfg:   cfg,
				run:   xid.New().String(),
				stdin: c.App.Reader,
			}
			if err = s.splitAll(c.Context, files, c.App.Writer); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		},
	}
}

type splitter struct {
	cfg   *Config
	run   string
	stdin io.Reader
}

// splitAll splits files concurrently and writes their records in argument order.
func (s *splitter) splitAll(ctx context.Context, files []string, w io.Writer) error {
	stdinCount := 0
	for _, name := range files {
		if name == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.New("stdin can only be read once")
	}

	log := logr.FromContextOrDiscard(ctx).WithValues("run", s.run)
	ctx = logr.NewContext(ctx, log)
	log.V(1).Info("splitting inputs", "files", len(files), "size", s.cfg.Size)

	if len(files) == 1 {
		return s.splitFile(ctx, files[0], w)
	}

	outs := make([]bytes.Buffer, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Concurrency)
	for i, name := range files {
		eg.Go(func() error {
			return s.splitFile(ctx, name, &outs[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i := range outs {
		if _, err := outs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// splitFile writes the chunks of one input as records to w.
func (s *splitter) splitFile(ctx context.Context, name string, w io.Writer) error {
	log := logr.FromContextOrDiscard(ctx).WithValues("file", name)

	lines, err := s.open(name)
	if err != nil {
		return err
	}
	var cursor chunk.Cursor[string] = lines
	if s.cfg.SkipEmpty {
		cursor = chunk.Filter(cursor, func(line string) bool {
			return strings.TrimSpace(line) != ""
		})
	}
	if s.cfg.Distinct {
		cursor = chunk.Distinct(cursor, s.cfg.DistinctLimit)
	}

	// The list owns the cursor and closes the file once the last line was read.
	node, err := chunk.Open(cursor, s.cfg.Size, chunk.Options{Owns: true, Logger: log})
	if err != nil {
		_ = lines.Close()
		return err
	}

	enc, err := newEncoder(s.cfg.Format, s.cfg.Color, w)
	if err != nil {
		_ = node.Close()
		return err
	}
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		err = enc.Encode(Record{
			Run:     s.run,
			File:    name,
			Index:   node.Index(),
			Items:   node.Chunk(),
			HasMore: node.HasMore(),
		})
		if err != nil || !node.HasMore() {
			break
		}
		if node, err = node.Next(); err != nil {
			return err
		}
	}
	if err != nil {
		_ = node.Close()
		return err
	}
	if err = enc.Close(); err != nil {
		return err
	}
	if err = lines.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	if err = node.Err(); err != nil {
		return fmt.Errorf("error closing %s: %w", name, err)
	}
	log.V(1).Info("split input", "chunks", node.Index()+1)
	return nil
}

func (s *splitter) open(name string) (*lineCursor, error) {
	if name == stdinName {
		return newLineCursor(s.stdin, nil), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return newLineCursor(f, f), nil
}

// lineCursor is a cursor over the lines of a reader.
type lineCursor struct {
	sc     *bufio.Scanner
	closer io.Closer
	err    error
}

func newLineCursor(r io.Reader, closer io.Closer) *lineCursor {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineCursor{sc: sc, closer: closer}
}

func (c *lineCursor) Next() (string, bool) {
	if c.sc.Scan() {
		return c.sc.Text(), true
	}
	c.err = c.sc.Err()
	return "", false
}

// Close closes the underlying reader, if it is closable.
func (c *lineCursor) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Err returns the first non-EOF error encountered while reading.
func (c *lineCursor) Err() error { return c.err }
