package ffufgen

import "log"

// Config holds all generator configuration.
type Config struct {
	// Param is the name of the parameter to fuzz.
	Param string
	// Wordlist is the path passed to ffuf's -w flag. It is not read or validated here.
	Wordlist string
	// RequestPath is the file holding the raw request. Empty means read stdin.
	RequestPath string
	// OutputPath is the file to write the command to. Empty means print to stdout.
	OutputPath string
	// Verbose enables the resolution report before the command is emitted.
	Verbose bool
	Logger  *log.Logger
}
