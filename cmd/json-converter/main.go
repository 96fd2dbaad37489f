// Package main provides the CLI entrypoint for json-converter.
//
// json-converter hydrates a JSON document against the classes declared in a
// YAML configuration document and prints the result:
//   - once, from a file or stdin
//   - on every write of the input file (-watch)
//   - over HTTP (-serve)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type options struct {
	configPath string
	inputPath  string
	format     string
	deck       bool
	watch      bool
	serveAddr  string
	strict     bool
}

func main() {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "YAML configuration document (required)")
	flag.StringVar(&opts.inputPath, "input", "", "JSON input file (default stdin)")
	flag.StringVar(&opts.format, "format", formatJSON, "output format: json or spew")
	flag.BoolVar(&opts.deck, "deck", false, "normalize the result with the deck adapter")
	flag.BoolVar(&opts.watch, "watch", false, "re-convert on every write of the input file")
	flag.StringVar(&opts.serveAddr, "serve", "", "serve the converter over HTTP on this address")
	flag.BoolVar(&opts.strict, "strict", false, "treat conversion warnings as errors")
	flag.Parse()

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := settings.logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, settings, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("json-converter failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, settings settings, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	if opts.configPath == "" {
		return errors.New("-config is required")
	}

	if opts.format != formatJSON && opts.format != formatSpew {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	svc, err := newService(opts, settings, logger)
	if err != nil {
		return err
	}

	switch {
	case opts.serveAddr != "":
		return serve(ctx, opts.serveAddr, svc, logger)

	case opts.watch:
		if opts.inputPath == "" {
			return errors.New("-watch needs -input")
		}

		return watch(ctx, opts.inputPath, func() error {
			return convertFile(svc, opts.inputPath, opts.format, stdout)
		}, logger)

	case opts.inputPath != "":
		return convertFile(svc, opts.inputPath, opts.format, stdout)

	default:
		return convertReader(svc, stdin, opts.format, stdout)
	}
}

func convertFile(svc *service, path, format string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return convertReader(svc, f, format, w)
}

func convertReader(svc *service, r io.Reader, format string, w io.Writer) error {
	doc, err := decodeJSON(r)
	if err != nil {
		return err
	}

	out, diags, err := svc.convert(doc)
	if err != nil {
		return err
	}

	if err := writeResult(w, out, format); err != nil {
		return err
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("conversion reported errors: %w", err)
	}

	return nil
}
