package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &application{
		log: logrus.New(),
	}
	app.log.SetOutput(os.Stderr)
	app.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := app.cli().Run(os.Args)
	if err != nil {
		app.log.Fatalf("fatal error: %s", err.Error())
	}
}

func (app *application) cli() *cli.App {
	return &cli.App{
		Name:  "rlezoo",
		Usage: "Compress and decompress data with several run-length encodings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load settings from a YAML `FILE`",
			},
			&cli.StringFlag{
				Name:    "variant",
				Aliases: []string{"V"},
				Usage:   "RLE variant to use (see the `variants` command)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum level of messages to log",
			},
		},
		Before: app.configure,
		Commands: []*cli.Command{
			{
				Name:   "variants",
				Usage:  "List the available RLE variants and their command ranges",
				Action: app.listVariants,
			},
			{
				Name:      "compress",
				Usage:     "Compress a file",
				ArgsUsage: "INPUT OUTPUT",
				Flags:     gzipFlags(true),
				Action:    app.compressFile,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a file",
				ArgsUsage: "INPUT OUTPUT",
				Flags:     gzipFlags(false),
				Action:    app.decompressFile,
			},
			{
				Name:  "genops",
				Usage: "Print or check the control-byte tables of a variant",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "output format: describe, c, or csv",
						Value:   "describe",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write to `FILE` instead of standard output",
					},
					&cli.BoolFlag{
						Name:  "verify",
						Usage: "run the exhaustive table self-check first",
					},
				},
				Action: app.generateOps,
			},
			{
				Name:      "suite",
				Usage:     "Run one or more fixture suites",
				ArgsUsage: "SUITE_FILE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-roundtrip",
						Usage: "don't feed outputs back through the inverse transform",
					},
				},
				Action: app.runSuites,
			},
		},
	}
}

func gzipFlags(withLevel bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "gzip",
			Aliases: []string{"z"},
			Usage:   "gzip the RLE stream (or gunzip before decompressing)",
		},
	}
	if withLevel {
		flags = append(flags, &cli.IntFlag{
			Name:  "gzip-level",
			Usage: "gzip compression level",
		})
	}
	return flags
}
