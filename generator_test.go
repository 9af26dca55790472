package ffufgen

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestGeneratorRunPrintsCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	generator := &Generator{Config: &Config{
		Param:       "id",
		Wordlist:    "words.txt",
		RequestPath: "./testdata/validGET.request",
		Logger:      log.New(&stderr, "", 0),
	}}

	if err := generator.Run(nil, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	expected := `ffuf -w words.txt -X GET -u "http://localhost:8000/search?q=test&id=FUZZ"`
	if !strings.HasPrefix(stdout.String(), expected) {
		t.Fatalf("Expected prefix %q, got %q", expected, stdout.String())
	}
}

func TestGeneratorRunVerboseReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	generator := &Generator{Config: &Config{
		Param:       "id",
		Wordlist:    "words.txt",
		RequestPath: "./testdata/jsonPOST.request",
		Verbose:     true,
		Logger:      log.New(&stderr, "", 0),
	}}

	if err := generator.Run(nil, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	output := stdout.String()
	for _, line := range []string{
		"Method: POST",
		"URL: http://api.example.com:8443/api/users",
		"Parameter to fuzz: id",
		"Parameter location: json_field",
		"JSON position: user.id",
	} {
		if !strings.Contains(output, line) {
			t.Fatalf("expected report to contain %q, got %q", line, output)
		}
	}
}

func TestGeneratorRunWritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "command.txt")
	var stdout, stderr bytes.Buffer
	generator := &Generator{Config: &Config{
		Param:       "password",
		Wordlist:    "words.txt",
		RequestPath: "./testdata/validPOST.request",
		OutputPath:  path,
		Logger:      log.New(&stderr, "", 0),
	}}

	if err := generator.Run(nil, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(written), `-d "username=admin&password=hunter2"`) {
		t.Fatalf("got unexpected command %q", string(written))
	}

	if !strings.Contains(stderr.String(), "ffuf command saved to "+path) {
		t.Fatalf("expected save confirmation, got %q", stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("command must not also be printed, got %q", stdout.String())
	}
}

func TestGeneratorRunReadsStdin(t *testing.T) {
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	go func() {
		writer.WriteString("GET /?id=1 HTTP/1.1\nHost: example.com\n")
		writer.Close()
	}()

	var stdout, stderr bytes.Buffer
	generator := &Generator{Config: &Config{
		Param:    "id",
		Wordlist: "words.txt",
		Logger:   log.New(&stderr, "", 0),
	}}

	if err := generator.Run(reader, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), `-u "http://example.com/?id=FUZZ"`) {
		t.Fatalf("got unexpected output %q", stdout.String())
	}
}

func TestGeneratorRunUnknownParameterFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	generator := &Generator{Config: &Config{
		Param:       "missing",
		Wordlist:    "words.txt",
		RequestPath: "./testdata/validGET.request",
		Logger:      log.New(&stderr, "", 0),
	}}

	err := generator.Run(nil, &stdout, &stderr)
	if errors.Cause(err) != ErrParameterNotFound {
		t.Fatalf("expected ErrParameterNotFound, got %v", err)
	}

	if stdout.Len() != 0 {
		t.Fatalf("no output expected on failure, got %q", stdout.String())
	}
}

func TestGeneratorRunMissingRequestFileFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	generator := &Generator{Config: &Config{
		Param:       "id",
		Wordlist:    "words.txt",
		RequestPath: "notfound.request",
		Logger:      log.New(&stderr, "", 0),
	}}

	if err := generator.Run(nil, &stdout, &stderr); err == nil {
		t.Fatal("expected error for missing request file")
	}
}
