package headers

import "strings"

// InvalidHeaderKey is the key a line without a colon-space separator is
// stored under. The original line is kept as the value so nothing is
// silently dropped; successive separator-less lines overwrite each other.
const InvalidHeaderKey = "invalid_header"

// ParseLine splits one header line (no line terminator) on the first
// occurrence of ": " into a lowercased key and its value. A line without
// the separator maps to the InvalidHeaderKey sentinel.
func ParseLine(line string) (string, string) {
	key, value, ok := strings.Cut(line, ": ")
	if !ok {
		return InvalidHeaderKey, line
	}
	return strings.ToLower(key), value
}

// Headers is a case-insensitive, single-valued header map. Duplicate
// keys are last-write-wins.
type Headers struct {
	headers map[string]string
}

func NewHeaders() *Headers {
	return &Headers{
		headers: make(map[string]string),
	}
}

// Get returns the value for a header under any casing of the key
func (h *Headers) Get(key string) (string, bool) {
	value, ok := h.headers[strings.ToLower(key)]
	return value, ok
}

// Set replaces the value for a header
func (h *Headers) Set(key, value string) {
	h.headers[strings.ToLower(key)] = value
}

// Del removes a header
func (h *Headers) Del(key string) {
	delete(h.headers, strings.ToLower(key))
}

// Len returns the number of distinct header keys
func (h *Headers) Len() int {
	return len(h.headers)
}

// GetAllHeaders returns the internal map (for iteration)
func (h *Headers) GetAllHeaders() map[string]string {
	return h.headers
}

// AddLine parses one raw header line and folds it into the map.
func (h *Headers) AddLine(line string) {
	key, value := ParseLine(line)
	h.headers[key] = value
}
