package response

import "fmt"

// StatusCode represents HTTP status codes
type StatusCode int

const (
	StatusOK         StatusCode = 200
	StatusCreated    StatusCode = 201
	StatusNoContent  StatusCode = 204
	StatusBadRequest StatusCode = 400
	StatusNotFound   StatusCode = 404
)

// statusText is the closed reason-phrase table. Codes outside it render
// with the "UNKNOWN" fallback rather than failing the request.
var statusText = map[StatusCode]string{
	StatusOK:        "OK",
	StatusCreated:   "CREATED",
	StatusNoContent: "NO CONTENT",
	StatusNotFound:  "NOT FOUND",
}

// StatusText returns the reason phrase for a status code
func StatusText(code StatusCode) string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return "UNKNOWN"
}

// Render produces the literal HTTP/1.1 response bytes for a status and
// body. Content-Length is the byte length of the body, not the rune count.
func Render(code StatusCode, body string) []byte {
	return []byte(fmt.Sprintf(
		"HTTP/1.1 %d %s\r\n"+
			"Content-Type: text/html\r\n"+
			"Content-Length: %d\r\n"+
			"\r\n"+
			"%s",
		code,
		StatusText(code),
		len(body),
		body,
	))
}
