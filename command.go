package ffufgen

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FuzzMarker is the placeholder token ffuf replaces with wordlist entries.
const FuzzMarker = "FUZZ"

// BuildCommand generates a ffuf command line for a request with the FUZZ marker
// substituted at the resolved target location. Everything else in the request is
// reproduced unchanged, with headers in their original order.
func BuildCommand(req *Request, target *FuzzTarget, wordlist string) (string, error) {
	if target == nil {
		return "", errors.New("no fuzz target resolved")
	}

	parts := []string{fmt.Sprintf("ffuf -w %s", wordlist)}
	parts = append(parts, fmt.Sprintf("-X %s", req.Method))
	parts = append(parts, fmt.Sprintf("-u \"%s\"", targetURL(req, target)))

	for _, name := range req.Headers.Names() {
		value, _ := req.Headers.Get(name)
		switch {
		case target.Location == LocationHeader && name == target.Param:
			parts = append(parts, fmt.Sprintf("-H \"%s: %s\"", name, FuzzMarker))
		case target.Location == LocationCookie && name == "Cookie":
			parts = append(parts, fmt.Sprintf("-H \"Cookie: %s\"", fuzzCookie(value, target.Param)))
		default:
			parts = append(parts, fmt.Sprintf("-H \"%s: %s\"", name, value))
		}
	}

	if req.HasBody() {
		switch target.Location {
		case LocationBodyParam:
			// The fuzzed form of the body is never emitted here; ffuf receives the
			// original payload. See the known-gap note in DESIGN.md.
			parts = append(parts, fmt.Sprintf("-d \"%s\"", req.Body))
		case LocationJSONField:
			parts = append(parts, fmt.Sprintf("-d '%s'", req.Body))
			parts = append(parts, "-mode pitchfork")
			parts = append(parts, fmt.Sprintf("-json '%s:%s'", target.JSONPath, FuzzMarker))
		default:
			parts = append(parts, fmt.Sprintf("-d '%s'", req.Body))
		}
	}

	return strings.Join(parts, " "), nil
}

// targetURL returns the request URL, with the query string rebuilt around the FUZZ
// marker when the target is a URL query parameter.
func targetURL(req *Request, target *FuzzTarget) string {
	if target.Location != LocationURLParam {
		return req.URL
	}

	path, query, _ := strings.Cut(req.Path, "?")
	base, _, _ := strings.Cut(req.URL, "?")
	base = strings.TrimSuffix(base, path)
	return base + path + "?" + fuzzQuery(query, target.Param)
}

// fuzzQuery replaces the value of the named parameter with the FUZZ marker.
// Segments without an "=" are passed through untouched.
func fuzzQuery(query, param string) string {
	segments := strings.Split(query, "&")
	for i, segment := range segments {
		name, _, ok := strings.Cut(segment, "=")
		if ok && name == param {
			segments[i] = name + "=" + FuzzMarker
		}
	}
	return strings.Join(segments, "&")
}

// fuzzCookie rebuilds a Cookie header value with the named cookie's value replaced
// by the FUZZ marker. Segments are trimmed and reassembled with "; ".
func fuzzCookie(header, param string) string {
	segments := strings.Split(header, ";")
	cookies := make([]string, 0, len(segments))
	for _, segment := range segments {
		name, _, ok := strings.Cut(segment, "=")
		if ok && strings.TrimSpace(name) == param {
			cookies = append(cookies, strings.TrimSpace(name)+"="+FuzzMarker)
		} else {
			cookies = append(cookies, strings.TrimSpace(segment))
		}
	}
	return strings.Join(cookies, "; ")
}
