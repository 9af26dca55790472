package ffufgen

import (
	"fmt"
	"io"
	"os"
)

// Generator runs the whole pipeline: read a raw request, parse it, resolve the
// fuzz target and emit a ffuf command.
type Generator struct {
	*Config
}

// Run processes exactly one request end-to-end.
// It either emits one command string to the configured destination or returns
// an error before producing output.
func (g *Generator) Run(stdin *os.File, stdout, stderr io.Writer) error {
	var raw string
	var err error
	if g.RequestPath != "" {
		raw, err = RawRequestFromFile(g.RequestPath)
	} else {
		raw, err = RawRequestFromStdin(stdin, stderr)
	}
	if err != nil {
		return err
	}

	req, err := ParseRequest(raw)
	if err != nil {
		return err
	}

	target, err := Resolve(req, g.Param)
	if err != nil {
		return err
	}

	command, err := BuildCommand(req, target, g.Wordlist)
	if err != nil {
		return err
	}

	if g.Verbose {
		WriteReport(stdout, req, target)
	}

	if g.OutputPath != "" {
		if err := WriteCommand(g.OutputPath, command); err != nil {
			return err
		}
		g.Logger.Printf("ffuf command saved to %s", g.OutputPath)
		return nil
	}

	fmt.Fprintln(stdout, command)
	return nil
}
