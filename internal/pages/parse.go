package pages

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

type parseContext struct {
	root *PageNode
	args argRegistry
}

func parsePageTree(route string, page any, args ...any) (*parseContext, error) {
	pc := &parseContext{args: make(argRegistry)}
	for _, v := range args {
		if err := pc.args.addArg(v); err != nil {
			return nil, fmt.Errorf("error adding argument to registry: %w", err)
		}
	}
	root, err := pc.parsePageTree(route, "", page)
	if err != nil {
		return nil, err
	}
	pc.root = root
	return pc, nil
}

func (p *parseContext) parsePageTree(route, fieldName string, page any) (*PageNode, error) {
	st := reflect.TypeOf(page) // struct type
	pt := reflect.TypeOf(page) // pointer type
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s must be a struct, got %s", cmp.Or(fieldName, st.String()), st.Kind())
	}
	item := &PageNode{Value: reflect.ValueOf(page), Name: cmp.Or(fieldName, st.Name())}
	item.Method, item.Route, item.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		route, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		child, err := p.parsePageTree(route, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, err
		}
		child.Parent = item
		item.Children = append(item.Children, child)
	}

	// pt's method set includes st's, so methods may be seen twice.
	seen := make(map[string]bool)
	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if seen[method.Name] || isPromotedMethod(&method) {
				continue
			}
			seen[method.Name] = true
			switch {
			case isComponent(&method):
				if item.Components == nil {
					item.Components = make(map[string]*reflect.Method)
				}
				item.Components[method.Name] = &method
			case strings.HasSuffix(method.Name, "Props"):
				if item.Props == nil {
					item.Props = make(map[string]*reflect.Method)
				}
				item.Props[method.Name] = &method
			case method.Name == "PageConfig":
				item.Config = &method
			case method.Name == "Middlewares":
				item.Middlewares = &method
			case method.Name == "Init":
				res, err := p.callMethod(item, &method)
				if err != nil {
					return nil, fmt.Errorf("error calling Init method on %s: %w", item.Name, err)
				}
				if _, err := extractError(res); err != nil {
					return nil, fmt.Errorf("error calling Init method on %s: %w", item.Name, err)
				}
			}
		}
	}
	return item, nil
}

// callMethod calls method on pn's value with args, then fills any remaining
// parameters from the registry. *PageNode parameters receive pn.
func (p *parseContext) callMethod(pn *PageNode, method *reflect.Method, args ...reflect.Value) ([]reflect.Value, error) {
	v := pn.Value
	receiver := method.Type.In(0)
	if receiver.Kind() == reflect.Ptr && v.Kind() != reflect.Ptr {
		if !v.CanAddr() {
			pv := reflect.New(v.Type())
			pv.Elem().Set(v)
			v = pv
		} else {
			v = v.Addr()
		}
	}
	if receiver.Kind() != reflect.Ptr && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	in := make([]reflect.Value, method.Type.NumIn())
	in[0] = v
	filled := 1
	for i := range min(len(in)-1, len(args)) {
		in[i+1] = args[i]
		filled++
	}
	pnv := reflect.ValueOf(pn)
	for i := filled; i < len(in); i++ {
		argType := method.Type.In(i)
		if argType == pnv.Type() {
			in[i] = pnv
			continue
		}
		val, ok := p.args.getArg(argType)
		if !ok {
			return nil, fmt.Errorf("method %s requires argument of type %s, but not found",
				formatMethod(method), argType.String())
		}
		in[i] = val
	}
	return method.Func.Call(in), nil
}

func (p *parseContext) callComponentMethod(pn *PageNode, method *reflect.Method, args ...reflect.Value) (component, error) {
	results, err := p.callMethod(pn, method, args...)
	if err != nil {
		return nil, fmt.Errorf("error calling component method %s: %w", formatMethod(method), err)
	}
	comp, ok := results[0].Interface().(component)
	if !ok || comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(method))
	}
	return comp, nil
}

func (p *parseContext) urlFor(v any) (string, error) {
	if f, ok := v.(func(*PageNode) bool); ok {
		for node := range p.root.All() {
			if f(node) {
				return node.FullRoute(), nil
			}
		}
		return "", fmt.Errorf("urlfor: no page node matched")
	}
	ptv := pointerType(reflect.TypeOf(v))
	for node := range p.root.All() {
		if pointerType(node.Value.Type()) == ptv {
			return node.FullRoute(), nil
		}
	}
	return "", fmt.Errorf("urlfor: no page node found for %s", ptv.String())
}

func pointerType(v reflect.Type) reflect.Type {
	if v.Kind() == reflect.Ptr {
		return v
	}
	return reflect.PointerTo(v)
}

func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	if len(parts) == 0 {
		path = "/"
		return
	}
	if len(parts) == 1 {
		path = parts[0]
		return
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethod, m) {
		method = m
		path = parts[1]
		title = strings.Join(parts[2:], " ")
	} else {
		path = parts[0]
		title = strings.Join(parts[1:], " ")
	}
	return
}

const methodAll = "ALL"

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

// component matches templ.Component without importing it.
type component interface {
	Render(context.Context, io.Writer) error
}

var componentType = reflect.TypeOf((*component)(nil)).Elem()

func isComponent(m *reflect.Method) bool {
	return m.Type.NumOut() == 1 && m.Type.Out(0).Implements(componentType)
}

// isPromotedMethod reports whether method was promoted from an embedded
// field. See https://github.com/golang/go/issues/73883.
func isPromotedMethod(method *reflect.Method) bool {
	pc := method.Func.Pointer()
	file, line := runtime.FuncForPC(pc).FileLine(pc)
	return file == "<autogenerated>" && line == 1
}

func formatMethod(method *reflect.Method) string {
	if method == nil || method.Func == (reflect.Value{}) {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", method.Type.In(0).String(), method.Name)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// extractError strips a trailing error result from args.
func extractError(args []reflect.Value) ([]reflect.Value, error) {
	if len(args) == 0 || !args[len(args)-1].Type().AssignableTo(errorType) {
		return args, nil
	}
	last := args[len(args)-1]
	args = args[:len(args)-1]
	if last.IsNil() {
		return args, nil
	}
	return args, last.Interface().(error)
}
