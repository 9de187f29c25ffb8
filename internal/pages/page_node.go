package pages

import (
	"fmt"
	"iter"
	"path"
	"reflect"
	"slices"
	"strings"
)

// PageNode is one page of a mounted tree.
type PageNode struct {
	Name   string
	Title  string
	Method string
	Route  string
	Value  reflect.Value

	// Components are the methods returning a component, by name.
	Components map[string]*reflect.Method
	// Props are the methods computing component arguments, by name.
	Props       map[string]*reflect.Method
	Config      *reflect.Method
	Middlewares *reflect.Method

	Parent   *PageNode
	Children []*PageNode
}

// FullRoute joins the routes from the root down to pn. A trailing slash or
// "{$}" on pn's own route is kept.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	full := path.Join(pn.Parent.FullRoute(), pn.Route)
	if strings.HasSuffix(pn.Route, "/") && !strings.HasSuffix(full, "/") {
		full += "/"
	}
	return full
}

// All yields pn and its descendants depth first.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

func (pn *PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + pn.Name)
	sb.WriteString("\n  title: " + pn.Title)
	sb.WriteString("\n  route: " + pn.Method + " " + pn.FullRoute())
	sb.WriteString("\n  middlewares: " + formatMethod(pn.Middlewares))
	names := make([]string, 0, len(pn.Components))
	for name := range pn.Components {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		sb.WriteString("\n  component: " + name + " -> " + formatMethod(pn.Components[name]))
	}
	for i, child := range pn.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		for _, line := range strings.SplitAfter(child.String(), "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}
