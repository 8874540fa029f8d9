package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs"
	"github.com/dargueta/rlezoo/genops"
	"github.com/dargueta/rlezoo/suite"
	"github.com/dargueta/rlezoo/utilities/compression"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type application struct {
	config Config
	log    *logrus.Logger
}

// configure loads the config file and applies the global flags on top of it.
func (app *application) configure(ctx *cli.Context) error {
	cfg, err := LoadConfig(ctx.String("config"))
	if err != nil {
		return err
	}

	if ctx.IsSet("variant") {
		cfg.Variant = ctx.String("variant")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	app.log.SetLevel(level)
	app.config = cfg
	return nil
}

func (app *application) listVariants(ctx *cli.Context) error {
	out := ctx.App.Writer
	for _, codec := range codecs.All() {
		limits := codec.Limits()
		fmt.Fprintf(
			out,
			"%-10s CPY %-8s REP %-8s LIT %s\n",
			codec.Name(),
			limits.Copy,
			limits.Repeat,
			limits.Literal,
		)
	}
	return nil
}

func (app *application) compressFile(ctx *cli.Context) error {
	return app.transformFile(ctx, true)
}

func (app *application) decompressFile(ctx *cli.Context) error {
	return app.transformFile(ctx, false)
}

func (app *application) transformFile(ctx *cli.Context, compress bool) error {
	if ctx.NArg() != 2 {
		return cli.Exit("expected exactly two arguments: INPUT OUTPUT", 1)
	}

	cfg := app.config
	if ctx.IsSet("gzip") {
		cfg.Gzip = ctx.Bool("gzip")
	}
	if ctx.IsSet("gzip-level") {
		cfg.GzipLevel = ctx.Int("gzip-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	codec, err := cfg.Codec()
	if err != nil {
		return err
	}

	input, err := readInput(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	output, err := openOutput(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	defer output.Close()

	digest := xxhash.New()
	writer := io.MultiWriter(output, digest)
	source := bytes.NewReader(input)

	var written int64
	switch {
	case compress && cfg.Gzip:
		written, err = compression.CompressImageLevel(codec, cfg.GzipLevel, source, writer)
	case compress:
		written, err = compression.CompressStream(codec, source, writer)
	case cfg.Gzip:
		written, err = compression.DecompressImage(codec, source, writer)
	default:
		written, err = compression.DecompressStream(codec, source, writer)
	}
	if err != nil {
		return err
	}

	message := "decompressed"
	if compress {
		message = "compressed"
	}
	app.log.WithFields(logrus.Fields{
		"variant":     codec.Name(),
		"gzip":        cfg.Gzip,
		"input_size":  len(input),
		"output_size": written,
		"xxhash":      fmt.Sprintf("%016x", digest.Sum64()),
	}).Info(message)
	return nil
}

func (app *application) generateOps(ctx *cli.Context) error {
	codec, err := app.config.Codec()
	if err != nil {
		return err
	}

	if ctx.Bool("verify") {
		if err := genops.Verify(codec); err != nil {
			return err
		}
		app.log.WithField("variant", codec.Name()).Info("table self-check passed")
	}

	var out io.Writer = ctx.App.Writer
	if path := ctx.String("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch format := ctx.String("format"); format {
	case "describe":
		return genops.Describe(out, codec)
	case "c":
		return genops.GenerateC(out, codec)
	case "csv":
		return genops.WriteCSV(out, codec)
	default:
		return rlezoo.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("unknown output format %q", format))
	}
}

func (app *application) runSuites(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.Exit("expected at least one suite file", 1)
	}

	options := suite.Options{SkipRoundTrip: ctx.Bool("skip-roundtrip")}
	failed := false

	for _, path := range ctx.Args().Slice() {
		summary, err := suite.RunFile(path, options)
		entry := app.log.WithFields(logrus.Fields{
			"suite":       path,
			"tests":       summary.Tests,
			"failures":    summary.Failures,
			"round_trips": summary.RoundTrips,
		})
		if err != nil {
			failed = true
			entry.Error(err.Error())
			continue
		}
		entry.Info("suite passed")
	}

	if failed {
		return cli.Exit("one or more suites failed", 1)
	}
	return nil
}

// readInput reads the whole file at path, or standard input if path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// openOutput creates the file at path, or returns standard output if path is
// "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
