package ffufgen

import (
	"fmt"
	"io"
)

// WriteReport prints a short report of what was resolved before the command is emitted.
func WriteReport(w io.Writer, req *Request, target *FuzzTarget) {
	fmt.Fprintf(w, "Method: %s\n", req.Method)
	fmt.Fprintf(w, "URL: %s\n", req.URL)
	fmt.Fprintf(w, "Parameter to fuzz: %s\n", target.Param)
	fmt.Fprintf(w, "Parameter location: %s\n", target.Location)
	if target.JSONPath != "" {
		fmt.Fprintf(w, "JSON position: %s\n", target.JSONPath)
	}
	fmt.Fprintf(w, "\nGenerated ffuf command:\n")
}
