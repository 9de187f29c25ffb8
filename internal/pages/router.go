package pages

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Router registers page handlers. Implementations exist for http.ServeMux and
// chi.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	mux *http.ServeMux
}

// NewRouter wraps mux, or http.DefaultServeMux when mux is nil.
func NewRouter(mux *http.ServeMux) *stdRouter {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdRouter{mux: mux}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts r. chi matches paths exactly, so a trailing "{$}" is
// dropped from patterns.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, pattern string, handler http.Handler) {
	pattern = strings.TrimSuffix(pattern, "{$}")
	if pattern == "" {
		pattern = "/"
	}
	if method == methodAll || method == "" {
		r.router.Handle(pattern, handler)
		return
	}
	r.router.Method(method, pattern, handler)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
