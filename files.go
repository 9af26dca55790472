package ffufgen

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// RawRequestFromFile reads raw HTTP request text from a file.
func RawRequestFromFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading request file %s", path)
	}
	return string(raw), nil
}

// RawRequestFromStdin reads raw HTTP request text from standard input until EOF.
// When stdin is a terminal a hint is printed to prompt so piped output stays clean.
// Empty input is an error.
func RawRequestFromStdin(stdin *os.File, prompt io.Writer) (string, error) {
	if isatty.IsTerminal(stdin.Fd()) {
		fmt.Fprintln(prompt, "Enter the HTTP request (press Ctrl+D when done):")
	}

	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading request from stdin")
	}

	if len(raw) == 0 {
		return "", errors.New("no HTTP request provided")
	}

	return string(raw), nil
}

// WriteCommand writes the generated command to a file.
func WriteCommand(path, command string) error {
	return errors.Wrapf(os.WriteFile(path, []byte(command), 0644), "writing command to %s", path)
}
