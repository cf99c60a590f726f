package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	spacesim "github.com/mtauraso/spacesim-tools"
	"github.com/urfave/cli/v2"
)

const defaultDB = "spacesim.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "spacesim"
	app.Usage = "Space simulator graphics asset utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SPACESIM_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to asset catalog",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert .R8 images and .PLT palettes to BMP",
			Description: "With an image, renders it through the assembled palette. With only a palette, renders its swatch sheets instead.",
			Action: func(c *cli.Context) error {
				s := spacesim.New(nil, newLogger(c))

				image, palette := c.String("image"), c.String("palette")
				switch {
				case image != "":
					if err := s.ConvertImage(image, palette, c.Bool("debug")); err != nil {
						return cli.NewExitError(err, 1)
					}
				case palette != "":
					if err := s.ConvertPalette(palette); err != nil {
						return cli.NewExitError(err, 1)
					}
				default:
					fmt.Println("Must provide either a palette or image or both.")
				}

				return nil
			},
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "image",
					Aliases: []string{"i"},
					Usage:   "path to the .R8 image to convert; without a palette the top 128 registers render as bright green",
				},
				&cli.StringFlag{
					Name:    "palette",
					Aliases: []string{"p"},
					Usage:   "path to the .PLT custom palette for the image",
				},
				&cli.BoolFlag{
					Name:    "debug",
					Aliases: []string{"d"},
					Usage:   "also write SPACESIM_DEBUG_PAL_6.BMP and SPACESIM_DEBUG_PAL_8.BMP with the palette values in use",
				},
			},
		},
		{
			Name:        "import",
			Usage:       "Convert a standard image into .R8 and .PLT assets",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s := spacesim.New(nil, newLogger(c))

				if err := s.ImportImage(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and catalog graphics assets",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := spacesim.NewAssetDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				s := spacesim.New(db, newLogger(c))

				if err := s.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
