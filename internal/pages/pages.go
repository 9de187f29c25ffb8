package pages

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/angelofallars/htmx-go"
)

// MiddlewareFunc wraps the handler of a page.
type MiddlewareFunc func(http.Handler, *PageNode) http.Handler

// Pages mounts page trees on a Router.
type Pages struct {
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
	pageConfig  func(*http.Request) (string, error)
}

// Option configures Pages.
type Option func(*Pages)

// New returns Pages that render the Page component and answer errors with a
// bare 500.
func New(options ...Option) *Pages {
	p := &Pages{
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		pageConfig: func(*http.Request) (string, error) { return "Page", nil },
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// WithErrorHandler sets the handler for errors returned by page methods or
// raised while rendering.
func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(p *Pages) {
		p.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page. The first one is
// outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(p *Pages) {
		p.middlewares = append(p.middlewares, middlewares...)
	}
}

// WithPageConfig sets how the component method is chosen for pages without a
// PageConfig method of their own.
func WithPageConfig(f func(*http.Request) (string, error)) Option {
	return func(p *Pages) {
		p.pageConfig = f
	}
}

// Mount parses the tree rooted at page and registers every page on router.
// args are injected into page methods by type.
func (p *Pages) Mount(router Router, page any, route, title string, args ...any) (*PageNode, error) {
	pc, err := parsePageTree(route, page, args...)
	if err != nil {
		return nil, err
	}
	pc.root.Title = title
	for node := range pc.root.All() {
		if err := p.registerPageItem(router, pc, node); err != nil {
			return nil, err
		}
	}
	return pc.root, nil
}

func (p *Pages) registerPageItem(router Router, pc *parseContext, page *PageNode) error {
	if page.Route == "" {
		return fmt.Errorf("page item route is empty: %s", page.Name)
	}
	handler, err := p.buildHandler(page, pc)
	if err != nil {
		return err
	}
	if handler == nil {
		return nil
	}
	// page middlewares from the node up to the root, so parents run first
	for n := page; n != nil; n = n.Parent {
		if n.Middlewares == nil {
			continue
		}
		res, err := pc.callMethod(n, n.Middlewares)
		if err != nil {
			return fmt.Errorf("error calling Middlewares method on %s: %w", n.Name, err)
		}
		res, err = extractError(res)
		if err != nil {
			return fmt.Errorf("error calling Middlewares method on %s: %w", n.Name, err)
		}
		if len(res) != 1 {
			return fmt.Errorf("Middlewares method on %s did not return single result", n.Name)
		}
		middlewares, ok := res[0].Interface().([]MiddlewareFunc)
		if !ok {
			return fmt.Errorf("Middlewares method on %s did not return []MiddlewareFunc", n.Name)
		}
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler, page)
		}
	}
	for i := len(p.middlewares) - 1; i >= 0; i-- {
		handler = p.middlewares[i](handler, page)
	}
	handler = withPcCtx(pc)(handler, page)
	router.HandleMethod(page.Method, page.FullRoute(), handler)
	return nil
}

func (p *Pages) buildHandler(page *PageNode, pc *parseContext) (http.Handler, error) {
	if h := p.getHTTPHandler(page.Value); h != nil {
		return h, nil
	}
	if len(page.Components) == 0 {
		return nil, nil
	}
	if _, ok := page.Components["Page"]; !ok {
		return nil, fmt.Errorf("page %s has components but no Page component", page.Name)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, err := p.componentName(pc, page, r)
		if err != nil {
			p.onError(w, r, fmt.Errorf("error selecting component on %s: %w", page.Name, err))
			return
		}
		comp, ok := page.Components[name]
		retarget := false
		if !ok {
			comp = page.Components["Page"]
			retarget = htmx.IsHTMX(r)
		}

		args, err := p.props(pc, page, comp.Name, r)
		if err != nil {
			p.onError(w, r, err)
			return
		}
		c, err := pc.callComponentMethod(page, comp, args...)
		if err != nil {
			p.onError(w, r, err)
			return
		}

		buf := getBuffer()
		defer releaseBuffer(buf)
		if err := c.Render(r.Context(), buf); err != nil {
			p.onError(w, r, fmt.Errorf("error rendering %s on %s: %w", comp.Name, page.Name, err))
			return
		}
		if retarget {
			// the full page replaces the document rather than the requested target
			if err := htmx.NewResponse().Retarget("body").Write(w); err != nil {
				p.onError(w, r, err)
				return
			}
		}
		_, _ = buf.WriteTo(w)
	}), nil
}

func (p *Pages) componentName(pc *parseContext, page *PageNode, r *http.Request) (string, error) {
	if page.Config == nil {
		return p.pageConfig(r)
	}
	res, err := pc.callMethod(page, page.Config, reflect.ValueOf(r))
	if err != nil {
		return "", err
	}
	res, err = extractError(res)
	if err != nil {
		return "", err
	}
	if len(res) != 1 || res[0].Kind() != reflect.String {
		return "", errors.New("PageConfig must return a string")
	}
	return res[0].String(), nil
}

// props calls <Component>Props, or Props when there is none, with the
// request and returns its results as component arguments.
func (p *Pages) props(pc *parseContext, page *PageNode, component string, r *http.Request) ([]reflect.Value, error) {
	method, ok := page.Props[component+"Props"]
	if !ok {
		method, ok = page.Props["Props"]
	}
	if !ok {
		return nil, nil
	}
	res, err := pc.callMethod(page, method, reflect.ValueOf(r))
	if err != nil {
		return nil, fmt.Errorf("error calling %s on %s: %w", method.Name, page.Name, err)
	}
	res, err = extractError(res)
	if err != nil {
		return nil, fmt.Errorf("error calling %s on %s: %w", method.Name, page.Name, err)
	}
	return res, nil
}

type httpErrHandler interface {
	ServeHTTP(http.ResponseWriter, *http.Request) error
}

var (
	handlerType    = reflect.TypeOf((*http.Handler)(nil)).Elem()
	errHandlerType = reflect.TypeOf((*httpErrHandler)(nil)).Elem()
)

func (p *Pages) getHTTPHandler(v reflect.Value) http.Handler {
	st, pt := v.Type(), v.Type()
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	method, ok := st.MethodByName("ServeHTTP")
	if !ok || isPromotedMethod(&method) {
		method, ok = pt.MethodByName("ServeHTTP")
		if !ok || isPromotedMethod(&method) {
			return nil
		}
	}
	switch {
	case v.Type().Implements(handlerType):
		return v.Interface().(http.Handler)
	case v.Type().Implements(errHandlerType):
		h := v.Interface().(httpErrHandler)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := h.ServeHTTP(w, r); err != nil {
				p.onError(w, r, err)
			}
		})
	}
	return nil
}
