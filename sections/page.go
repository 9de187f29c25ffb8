package sections

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
)

// Overrides supplies the override for each section.
type Overrides interface {
	Section(name string) content.Override
}

// OverrideMap is a fixed set of overrides keyed by section name.
type OverrideMap map[string]content.Override

func (m OverrideMap) Section(name string) content.Override { return m[name] }

// Meta is the document metadata of the page.
type Meta struct {
	Title       string
	Description string
	// Assets is the URL prefix of the site stylesheet.
	Assets string
	// Scripts are loaded deferred in order. DefaultScripts when nil.
	Scripts []string
}

// DefaultScripts load htmx and the iconify icon set.
var DefaultScripts = []string{
	"https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js",
	"https://code.iconify.design/3/3.1.1/iconify.min.js",
}

var navItems = []struct{ label, section string }{
	{"Features", "features"},
	{"Pricing", "pricing"},
	{"Contact", "contact"},
	{"About", "about"},
}

// Page renders the complete document: every section of All in order inside
// the shared layout. The manifest covers every section.
func Page(meta Meta, ov Overrides, st State) (templ.Component, *content.Manifest) {
	m := &content.Manifest{}
	var main []g.Node
	var footer g.Node
	for _, s := range All {
		n := s.node(overrideFor(ov, s.Name), st, m)
		if s == Footer {
			footer = h.Div(h.ID(s.Name), n)
			continue
		}
		main = append(main, h.Div(h.ID(s.Name), n))
	}
	return component(layout(meta, main, footer)), m
}

// Fragment renders one section without the layout, for htmx swaps.
func Fragment(s *Section, ov Overrides, st State) (templ.Component, *content.Manifest) {
	return s.Render(overrideFor(ov, s.Name), st)
}

// Markup drops the manifest of a render, for callers that only serve the
// markup.
func Markup(c templ.Component, _ *content.Manifest) templ.Component { return c }

func overrideFor(ov Overrides, name string) content.Override {
	if ov == nil {
		return nil
	}
	return ov.Section(name)
}

func layout(meta Meta, main []g.Node, footer g.Node) g.Node {
	scripts := meta.Scripts
	if scripts == nil {
		scripts = DefaultScripts
	}
	links := make([]g.Node, len(navItems))
	for i, item := range navItems {
		links[i] = h.A(h.Href("#"+item.section), h.Class("text-sm font-medium text-muted-foreground hover:text-foreground transition-colors"), g.Text(item.label))
	}
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(meta.Title)),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				h.Link(h.Rel("stylesheet"), h.Href(meta.Assets+"/site.css")),
				g.Group(g.Map(scripts, func(src string) g.Node {
					return h.Script(h.Src(src), h.Defer())
				})),
			),
			h.Body(h.Class("min-h-screen bg-background text-foreground antialiased"),
				h.Header(h.Class("sticky top-0 z-40 border-b border-border/50 bg-background/80 backdrop-blur"),
					h.Nav(h.Class("container mx-auto flex h-16 items-center justify-between px-4 sm:px-6 lg:px-8"),
						h.A(h.Href("#hero"), h.Class("font-bold text-lg"), g.Text(meta.Title)),
						h.Div(h.Class("hidden md:flex items-center gap-6"), g.Group(links)),
					),
				),
				h.Main(g.Group(main)),
				footer,
			),
		),
	)
}
