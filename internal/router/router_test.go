package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tekbug/http-server/internal/response"
)

func TestDefaultRoutes(t *testing.T) {
	r := Default()

	// Test: GET /
	code, body := r.Route("GET", "/", "")
	assert.Equal(t, response.StatusOK, code)
	assert.Equal(t, "We accept 200 OK now.", body)

	// Test: POST /something echoes the body
	code, body = r.Route("POST", "/something", "hello")
	assert.Equal(t, response.StatusCreated, code)
	assert.Equal(t, "CREATED: hello", body)

	// Test: PUT /update echoes the body
	code, body = r.Route("PUT", "/update", "newer")
	assert.Equal(t, response.StatusOK, code)
	assert.Equal(t, "UPDATED: newer", body)

	// Test: DELETE /delete echoes the body
	code, body = r.Route("DELETE", "/delete", "target")
	assert.Equal(t, response.StatusNoContent, code)
	assert.Equal(t, "DELETED target", body)
}

func TestUnmatchedPath(t *testing.T) {
	r := Default()

	code, body := r.Route("GET", "/missing", "")
	assert.Equal(t, response.StatusNotFound, code)
	assert.Equal(t, "NOT FOUND", body)
}

func TestUnrecognizedMethod(t *testing.T) {
	// PATCH falls through to the same 404 default as an unmatched path.
	r := Default()

	code, body := r.Route("PATCH", "/", "")
	assert.Equal(t, response.StatusNotFound, code)
	assert.Equal(t, "NOT FOUND", body)
}

func TestExactPathMatchOnly(t *testing.T) {
	r := Default()

	code, _ := r.Route("GET", "/something", "")
	assert.Equal(t, response.StatusNotFound, code)

	code, _ = r.Route("GET", "//", "")
	assert.Equal(t, response.StatusNotFound, code)
}

func TestRouteIsIdempotent(t *testing.T) {
	r := Default()

	code1, body1 := r.Route("POST", "/something", "same input")
	code2, body2 := r.Route("POST", "/something", "same input")

	assert.Equal(t, code1, code2)
	assert.Equal(t, body1, body2)
}

func TestCustomRoute(t *testing.T) {
	r := New()
	r.GET("/ping", func(string) (response.StatusCode, string) {
		return response.StatusOK, "pong"
	})

	code, body := r.Route("GET", "/ping", "")
	assert.Equal(t, response.StatusOK, code)
	assert.Equal(t, "pong", body)
}
