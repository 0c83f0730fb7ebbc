package router

import "github.com/tekbug/http-server/internal/response"

// HandlerFunc maps a request body to a status code and response body.
// Handlers must be pure: identical input, identical output.
type HandlerFunc func(body string) (response.StatusCode, string)

// Route represents a single route
type Route struct {
	Method  string
	Path    string
	Handler HandlerFunc
}

// Router dispatches requests by method and exact path match. The table
// is fixed after registration; Route never mutates it.
type Router struct {
	routes []Route
}

// New creates a new router
func New() *Router {
	return &Router{
		routes: make([]Route, 0),
	}
}

// Handle registers a new route
func (r *Router) Handle(method, path string, handler HandlerFunc) {
	r.routes = append(r.routes, Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// GET is a shortcut for Handle("GET", ...)
func (r *Router) GET(path string, handler HandlerFunc) {
	r.Handle("GET", path, handler)
}

// POST is a shortcut for Handle("POST", ...)
func (r *Router) POST(path string, handler HandlerFunc) {
	r.Handle("POST", path, handler)
}

// PUT is a shortcut for Handle("PUT", ...)
func (r *Router) PUT(path string, handler HandlerFunc) {
	r.Handle("PUT", path, handler)
}

// DELETE is a shortcut for Handle("DELETE", ...)
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.Handle("DELETE", path, handler)
}

// Route dispatches one request. Path comparison is exact byte equality;
// an unmatched path or an unregistered method both fall through to the
// same 404 default.
func (r *Router) Route(method, path, body string) (response.StatusCode, string) {
	for _, rt := range r.routes {
		if rt.Method == method && rt.Path == path {
			return rt.Handler(body)
		}
	}
	return response.StatusNotFound, "NOT FOUND"
}

// Default returns the router with the fixed application routes.
func Default() *Router {
	r := New()

	r.GET("/", func(string) (response.StatusCode, string) {
		return response.StatusOK, "We accept 200 OK now."
	})
	r.POST("/something", func(body string) (response.StatusCode, string) {
		return response.StatusCreated, "CREATED: " + body
	})
	r.PUT("/update", func(body string) (response.StatusCode, string) {
		return response.StatusOK, "UPDATED: " + body
	})
	r.DELETE("/delete", func(body string) (response.StatusCode, string) {
		return response.StatusNoContent, "DELETED " + body
	})

	return r
}
