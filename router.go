package restkit

import (
	"net/http"
	"strings"
)

// ServeMuxRouter adapts a stdlib *http.ServeMux to the Router interface.
// Composed paths use ":name" parameter segments; the adapter rewrites them
// to the ServeMux "{name}" syntax and registers method-qualified patterns.
type ServeMuxRouter struct {
	mux *http.ServeMux
}

// NewServeMuxRouter wraps mux. A nil mux gets a fresh one.
func NewServeMuxRouter(mux *http.ServeMux) *ServeMuxRouter {
	if mux == nil {
		mux = http.NewServeMux()
	}
	return &ServeMuxRouter{mux: mux}
}

// Mux returns the underlying ServeMux for serving.
func (rt *ServeMuxRouter) Mux() *http.ServeMux {
	return rt.mux
}

// Handle implements Router.
func (rt *ServeMuxRouter) Handle(method, path string, h http.Handler) {
	rt.mux.Handle(method+" "+muxPattern(path), h)
}

// muxPattern rewrites ":name" segments to "{name}".
func muxPattern(path string) string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}
