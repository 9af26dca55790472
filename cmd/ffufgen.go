package main

import (
	"log"
	"os"

	ffufgen "github.com/G4sp4rCS/http-request-to-ffuf"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

func actionGenerate(c *cli.Context) error {
	ffufgen.PrintBanner(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()))

	config := &ffufgen.Config{
		Param:       c.String("param"),
		Wordlist:    c.String("wordlist"),
		RequestPath: c.String("request"),
		OutputPath:  c.String("output"),
		Verbose:     c.Bool("verbose"),
		Logger:      log.New(os.Stderr, "", 0),
	}

	generator := &ffufgen.Generator{Config: config}
	return generator.Run(os.Stdin, os.Stdout, os.Stderr)
}

func main() {
	app := &cli.App{
		Name:   "ffufgen",
		Usage:  "generate a ffuf command from a raw HTTP request",
		Action: actionGenerate,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "param",
				Aliases:  []string{"p"},
				Required: true,
				Usage:    "the parameter to fuzz",
			},
			&cli.StringFlag{
				Name:     "wordlist",
				Aliases:  []string{"w"},
				Required: true,
				Usage:    "path to the wordlist passed to ffuf",
			},
			&cli.StringFlag{
				Name:     "request",
				Aliases:  []string{"r"},
				Required: false,
				Usage:    "file with the raw HTTP request (default: read stdin)",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: false,
				Usage:    "write the generated command to this file instead of stdout",
			},
			&cli.BoolFlag{
				Name:     "verbose",
				Aliases:  []string{"v"},
				Required: false,
				Usage:    "print how the parameter was resolved before the command",
			},
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
