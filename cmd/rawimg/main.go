package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/rawimg"
	"github.com/urfave/cli/v2"
)

const (
	defaultPattern = "paltest.bin"
	defaultDebug   = "debug.txt"
	defaultSource  = "cam_vga.gif"
	defaultSample  = "cam_vga.bin"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newTool(c *cli.Context) (*rawimg.Tool, func() error, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	if c.String("db") == "" {
		return rawimg.New(nil, logger), func() error { return nil }, nil
	}

	catalog, err := rawimg.NewCatalog(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return rawimg.New(catalog, logger), catalog.Close, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "rawimg"
	app.Usage = "Raw 8-bit VGA image generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"RAWIMG_DB"},
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "pattern",
			Usage:       "Generate a 256 color palette test pattern",
			Description: "",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   defaultPattern,
					Usage:   "raw image output file",
				},
				&cli.StringFlag{
					Name:  "debug",
					Value: defaultDebug,
					Usage: "hexadecimal dump output file",
				},
				&cli.BoolFlag{
					Name:  "no-debug",
					Usage: "skip writing the hexadecimal dump",
				},
			},
			Action: func(c *cli.Context) error {
				t, closer, err := newTool(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				debug := c.String("debug")
				if c.Bool("no-debug") {
					debug = ""
				}

				if err := t.GeneratePattern(c.String("output"), debug); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "sample",
			Usage:       "Convert an image to raw format",
			Description: "",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   defaultSample,
					Usage:   "raw image output file",
				},
			},
			Action: func(c *cli.Context) error {
				file := defaultSource
				if c.NArg() > 0 {
					file = c.Args().First()
				}

				t, closer, err := newTool(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := t.Sample(file, c.String("output")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List files recorded in the catalog",
			Description: "",
			Action: func(c *cli.Context) error {
				if c.String("db") == "" {
					return cli.NewExitError(errors.New("no catalog database specified"), 1)
				}

				catalog, err := rawimg.OpenCatalog(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer catalog.Close()

				entries, err := catalog.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, e := range entries {
					fmt.Printf("%s\t%d\t%s\n", e.Name, e.Size, e.SHA1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
