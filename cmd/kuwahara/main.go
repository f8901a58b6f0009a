// Command kuwahara applies the Kuwahara edge-preserving smoothing filter to
// an image file.
//
// Usage:
//
//	kuwahara [flags] INPUT
//
// The input format is detected from its content (PNG, JPEG, GIF, BMP,
// TIFF, WebP). The output format follows the output file extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/kuwahara"
	"github.com/gogpu/kuwahara/internal/image"
)

// config holds the parsed command line.
type config struct {
	input   string
	output  string
	radius  int
	workers int
	quality int
	method  kuwahara.Method
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args. It returns flag.ErrHelp when -h was requested.
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	var methodName string

	fs := flag.NewFlagSet("kuwahara", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.output, "o", "a.png", "output file; the extension selects the format")
	fs.StringVar(&cfg.output, "output", "a.png", "alias for -o")
	fs.IntVar(&cfg.radius, "r", 7, "filter radius; windows are (r+1)x(r+1) pixels")
	fs.IntVar(&cfg.radius, "radius", 7, "alias for -r")
	fs.IntVar(&cfg.workers, "workers", 0, "goroutines per pass (0 = all CPUs, 1 = sequential)")
	fs.StringVar(&methodName, "method", kuwahara.MethodSliding.String(), "window statistics method: sliding or direct")
	fs.IntVar(&cfg.quality, "quality", image.DefaultQuality, "JPEG output quality (1-100)")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug details")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: kuwahara [flags] INPUT\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected one input file, got %d arguments", fs.NArg())
	}
	cfg.input = fs.Arg(0)

	method, err := kuwahara.ParseMethod(methodName)
	if err != nil {
		return nil, err
	}
	cfg.method = method

	if cfg.radius < 0 {
		return nil, fmt.Errorf("radius must not be negative, got %d", cfg.radius)
	}
	if !image.FormatFromPath(cfg.output).CanEncode() {
		return nil, fmt.Errorf("output %q: %w", cfg.output, image.ErrUnsupportedFormat)
	}
	return cfg, nil
}

// run executes the command with the given arguments, logging to stderr.
func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := newLogger(stderr, cfg.verbose)
	kuwahara.SetLogger(logger)
	defer kuwahara.SetLogger(nil)

	pm, format, err := image.Load(cfg.input)
	if err != nil {
		return err
	}
	logger.Debug("image loaded",
		"path", cfg.input,
		"format", format.String(),
		"width", pm.Width(),
		"height", pm.Height(),
	)

	err = kuwahara.Apply(pm, cfg.radius,
		kuwahara.WithWorkers(cfg.workers),
		kuwahara.WithMethod(cfg.method),
	)
	if err != nil {
		return err
	}

	if err := image.Save(cfg.output, pm, image.EncodeOptions{Quality: cfg.quality}); err != nil {
		return err
	}

	logger.Info("filtered image saved", "path", cfg.output, "radius", cfg.radius)
	return nil
}
