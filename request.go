package ffufgen

// ContentTypeClass classifies a request's Content-Type header into the categories the resolver cares about.
// It is computed once at parse time so the resolver and command builder can match on it instead of re-checking substrings.
type ContentTypeClass int

const (
	// ContentTypeNone means no Content-Type header was present.
	ContentTypeNone ContentTypeClass = iota
	// ContentTypeJSON is an application/json body.
	ContentTypeJSON
	// ContentTypeForm is an application/x-www-form-urlencoded body.
	ContentTypeForm
	// ContentTypeMultipart is a multipart/form-data body. Detected but not fuzzed.
	ContentTypeMultipart
	// ContentTypeOther is any other Content-Type value.
	ContentTypeOther
)

// Request is the structured form of a raw HTTP request.
// It is built once by ParseRequest and never mutated afterwards.
type Request struct {
	Method      string
	Path        string
	Proto       string
	Headers     *Headers
	Body        string
	Host        string
	Port        int
	URL         string
	ContentType ContentTypeClass
}

// HasBody returns true if the request carries a body that ffuf can send.
// ffuf only sends a data payload for methods that allow one.
func (r *Request) HasBody() bool {
	if r.Body == "" {
		return false
	}
	switch r.Method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}
