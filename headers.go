package ffufgen

// Headers is an ordered collection of HTTP header fields.
// Insertion order is preserved so commands can be reconstructed with headers in the order they were captured.
// Names are kept exactly as received; lookups are exact-match and a later Set of the same name overwrites the value in place.
type Headers struct {
	names  []string
	values map[string]string
}

// NewHeaders returns an empty Headers collection.
func NewHeaders() *Headers {
	return &Headers{values: map[string]string{}}
}

// Set stores a header value, keeping the position of the first occurrence of the name.
func (h *Headers) Set(name, value string) {
	if _, exists := h.values[name]; !exists {
		h.names = append(h.names, name)
	}
	h.values[name] = value
}

// Get returns the value for an exact header name and whether it was present.
func (h *Headers) Get(name string) (string, bool) {
	value, ok := h.values[name]
	return value, ok
}

// Names returns the header names in insertion order.
func (h *Headers) Names() []string {
	return h.names
}

// Len returns the number of distinct header names.
func (h *Headers) Len() int {
	return len(h.names)
}
