// Command conicplot draws the conic sections described by a TOML scene.
//
// Usage:
//
//	conicplot [flags] scene.toml
//
// The figure is written as SVG, or as text with -format text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"honnef.co/go/conic/internal/scene"
)

var (
	flagOut      = flag.String("o", "", "output file. Defaults to standard output.")
	flagFormat   = flag.String("format", "svg", "output format, svg or text")
	flagCols     = flag.Int("cols", 100, "width of text output, in characters")
	flagRows     = flag.Int("rows", 40, "height of text output, in lines")
	flagLogLevel = flag.String("log-level", "warn", "log level: trace, debug, info, warn or error")
)

type options struct {
	out    string
	format string
	cols   int
	rows   int
}

func (o options) validate() error {
	switch o.format {
	case "svg":
	case "text":
		if o.cols <= 0 || o.rows <= 0 {
			return errors.Errorf("text output needs positive -cols and -rows, got %d×%d", o.cols, o.rows)
		}
	default:
		return errors.Errorf("unknown format %q", o.format)
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s [flags] scene.toml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "conicplot",
		Level:  hclog.LevelFromString(*flagLogLevel),
		Output: os.Stderr,
	})
	opts := options{
		out:    *flagOut,
		format: *flagFormat,
		cols:   *flagCols,
		rows:   *flagRows,
	}
	if err := run(logger, flag.Arg(0), opts, os.Stdout); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}

// run draws the scene at path. Output goes to stdout unless opts names a
// file. Options are checked before the scene is read or the file is
// created.
func run(logger hclog.Logger, path string, opts options, stdout io.Writer) (err error) {
	if err := opts.validate(); err != nil {
		return err
	}
	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger.Info("loaded scene", "path", path, "shapes", len(s.Shapes))
	f, err := s.Render(logger)
	if err != nil {
		return err
	}

	w := stdout
	if opts.out != "" {
		out, oerr := os.Create(opts.out)
		if oerr != nil {
			return errors.Wrap(oerr, "creating output")
		}
		defer func() {
			if cerr := out.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "closing output")
			}
		}()
		w = out
	}

	if opts.format == "text" {
		_, err = io.WriteString(w, f.Text(opts.cols, opts.rows))
		return errors.Wrap(err, "writing text")
	}
	return f.WriteSVG(w)
}
