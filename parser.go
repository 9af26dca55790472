package ffufgen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseRequest parses raw HTTP request text into a Request.
// Parsing is permissive: structurally odd input degrades to empty fields rather than failing.
// The one exception is a non-numeric port in the Host header, which returns an error.
func ParseRequest(raw string) (*Request, error) {
	req := &Request{Headers: NewHeaders()}

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	// Request line: METHOD PATH PROTOCOL
	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) > 0 {
		req.Method = parts[0]
	}
	if len(parts) > 1 {
		req.Path = parts[1]
	}
	if len(parts) > 2 {
		req.Proto = parts[2]
	}

	// Headers run until the first empty line. A later duplicate name overwrites the earlier value.
	bodyStart := 0
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			bodyStart = i + 1
			break
		}

		if colon := strings.Index(line, ":"); colon >= 0 {
			name := strings.TrimSpace(line[:colon])
			value := strings.TrimSpace(line[colon+1:])
			req.Headers.Set(name, value)
		}
	}

	if bodyStart > 0 && bodyStart < len(lines) {
		req.Body = strings.Join(lines[bodyStart:], "\n")
	}

	if host, ok := req.Headers.Get("Host"); ok {
		req.Host = host
		if colon := strings.Index(host, ":"); colon >= 0 {
			port, err := strconv.Atoi(host[colon+1:])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid port in Host header %q", host)
			}
			req.Host = host[:colon]
			req.Port = port
		}

		scheme := "http"
		if req.Port == 443 {
			scheme = "https"
		}

		portSuffix := ""
		if req.Port != 0 && req.Port != 80 && req.Port != 443 {
			portSuffix = ":" + strconv.Itoa(req.Port)
		}

		req.URL = scheme + "://" + req.Host + portSuffix + req.Path
	}

	if contentType, ok := req.Headers.Get("Content-Type"); ok {
		req.ContentType = classifyContentType(contentType)
	}

	return req, nil
}

func classifyContentType(contentType string) ContentTypeClass {
	switch {
	case strings.Contains(contentType, "application/json"):
		return ContentTypeJSON
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		return ContentTypeForm
	case strings.Contains(contentType, "multipart/form-data"):
		return ContentTypeMultipart
	}
	return ContentTypeOther
}
