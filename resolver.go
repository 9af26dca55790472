package ffufgen

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ErrParameterNotFound is returned by Resolve when the parameter does not appear anywhere in the request.
var ErrParameterNotFound = errors.New("parameter not found in request")

// Location is the category of place in a request where a parameter was found.
type Location int

const (
	// LocationURLParam is a parameter in the URL query string.
	LocationURLParam Location = iota
	// LocationBodyParam is a parameter in a form-urlencoded body.
	LocationBodyParam
	// LocationJSONField is a field in a JSON body.
	LocationJSONField
	// LocationHeader is a header name.
	LocationHeader
	// LocationCookie is a cookie name inside the Cookie header.
	LocationCookie
)

// String returns the location tag used in verbose reports.
func (l Location) String() string {
	switch l {
	case LocationURLParam:
		return "url_param"
	case LocationBodyParam:
		return "body_param"
	case LocationJSONField:
		return "json_field"
	case LocationHeader:
		return "header"
	case LocationCookie:
		return "cookie"
	}
	return "unknown"
}

// FuzzTarget records where in a request the parameter to fuzz was found.
// JSONPath is only set for LocationJSONField.
type FuzzTarget struct {
	Location Location
	Param    string
	JSONPath string
}

// Resolve searches a request for a parameter name and returns where it was found.
// Locations are searched in a fixed priority order: URL query parameters, form body
// parameters, JSON body fields, headers, then cookies. The first match wins.
// A JSON body that fails to parse is treated as not containing the parameter.
func Resolve(req *Request, param string) (*FuzzTarget, error) {
	if _, query, hasQuery := strings.Cut(req.Path, "?"); hasQuery {
		if queryHasParam(query, param) {
			return &FuzzTarget{Location: LocationURLParam, Param: param}, nil
		}
	}

	if req.ContentType == ContentTypeForm && req.Body != "" && queryHasParam(req.Body, param) {
		return &FuzzTarget{Location: LocationBodyParam, Param: param}, nil
	}

	if req.ContentType == ContentTypeJSON && req.Body != "" {
		if path, found := FindJSONPath(req.Body, param); found {
			return &FuzzTarget{Location: LocationJSONField, Param: param, JSONPath: path}, nil
		}
	}

	if _, ok := req.Headers.Get(param); ok {
		return &FuzzTarget{Location: LocationHeader, Param: param}, nil
	}

	if cookie, ok := req.Headers.Get("Cookie"); ok && cookieHasParam(cookie, param) {
		return &FuzzTarget{Location: LocationCookie, Param: param}, nil
	}

	return nil, errors.Wrapf(ErrParameterNotFound, "parameter %q", param)
}

// queryHasParam reports whether a query-string-encoded string contains a parameter name.
// Undecodable segments are ignored rather than treated as errors.
func queryHasParam(query, param string) bool {
	values, _ := url.ParseQuery(query)
	_, ok := values[param]
	return ok
}

// cookieHasParam reports whether a Cookie header value contains a cookie with the given name.
func cookieHasParam(header, param string) bool {
	for _, segment := range strings.Split(header, ";") {
		name, _, ok := strings.Cut(segment, "=")
		if ok && strings.TrimSpace(name) == param {
			return true
		}
	}
	return false
}
