package request

import (
	"errors"
	"strings"

	"github.com/tekbug/http-server/internal/headers"
)

// Separator is the wire line separator for HTTP/1.1 text framing.
const Separator = "\r\n"

var ErrMalformedRequestLine = errors.New("malformed request line")

// Request is one parsed HTTP request. It lives for a single
// request/response cycle and is discarded afterwards.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers *headers.Headers
	Body    string
}

// Parse turns the full raw payload of one connection read into a Request.
// The entire request (request line, headers, body) must be present in the
// buffer; payloads split across reads are not supported.
func Parse(raw []byte) (*Request, error) {
	lines := strings.Split(string(raw), Separator)

	method, path, version, err := parseRequestLine(lines[0])
	if err != nil {
		return nil, err
	}

	headerLines, bodyLines := splitAtBlankLine(lines[1:])

	h := headers.NewHeaders()
	for _, line := range headerLines {
		h.AddLine(line)
	}

	return &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: h,
		Body:    strings.Join(bodyLines, Separator),
	}, nil
}

// parseRequestLine parses: METHOD PATH VERSION
func parseRequestLine(line string) (string, string, string, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return "", "", "", ErrMalformedRequestLine
	}
	return parts[0], parts[1], parts[2], nil
}

// splitAtBlankLine partitions the lines after the request line at the
// first empty line: headers before it, body after it. The blank line is
// the sole header/body boundary, so a body containing a blank line of its
// own is truncated there.
func splitAtBlankLine(lines []string) ([]string, []string) {
	for i, line := range lines {
		if line == "" {
			return lines[:i], lines[i+1:]
		}
	}
	return lines, nil
}
