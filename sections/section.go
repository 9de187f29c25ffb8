// Package sections renders the landing page sections. Each section merges an
// override over its default content table, projects the result into a fixed
// list of records and renders them, tagging every editable field with the
// content key that produced it.
package sections

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
)

// State is per-request UI state that is not content.
type State struct {
	Billing BillingCycle
	// BillingURL is the page the toggle requests its fragment from. The
	// site root when empty.
	BillingURL string
	// Enquiry and Form echo the last contact form submission.
	Enquiry Enquiry
	Form    FormStatus
}

// Section is one independent block of the page.
type Section struct {
	// Name is the section id in markup and manifests.
	Name     string
	Defaults content.Table
	build    func(tg *tagger, st State) g.Node
}

// Render merges o over the section defaults and returns the component with
// the manifest of every editable field it renders.
func (s *Section) Render(o content.Override, st State) (templ.Component, *content.Manifest) {
	m := &content.Manifest{}
	n := s.node(o, st, m)
	return component(n), m
}

func (s *Section) node(o content.Override, st State, m *content.Manifest) g.Node {
	tg := &tagger{section: s.Name, t: s.Defaults.Merge(o), m: m}
	return s.build(tg, st)
}

// All lists the sections in page order.
var All = []*Section{Hero, Features, Pricing, Contact, About, Footer}

// Lookup returns the section called name.
func Lookup(name string) (*Section, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Tables returns the default table of every section by name.
func Tables() map[string]content.Table {
	tables := make(map[string]content.Table, len(All))
	for _, s := range All {
		tables[s.Name] = s.Defaults
	}
	return tables
}

// component adapts a gomponents node to a templ component.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// tagger reads effective content and records each field it hands out.
type tagger struct {
	section string
	t       content.Table
	m       *content.Manifest
}

// get returns the raw value of key without recording it.
func (tg *tagger) get(key string) string { return tg.t.Get(key) }

// text renders key's value in a span tagged with key.
func (tg *tagger) text(key string) g.Node {
	v := tg.t.Get(key)
	tg.m.Add(tg.section, key, content.KindText, v)
	return h.Span(g.Attr(content.KindText.Attribute(), key), g.Text(v))
}

// tag returns key's value and the data-editable attribute for elements that
// carry the tag themselves.
func (tg *tagger) tag(key string) (string, g.Node) {
	v := tg.t.Get(key)
	tg.m.Add(tg.section, key, content.KindText, v)
	return v, g.Attr(content.KindText.Attribute(), key)
}

// href returns key's value, recording it as a link target. The attribute
// itself is emitted by navigate.Attrs.
func (tg *tagger) href(key string) string {
	v := tg.t.Get(key)
	tg.m.Add(tg.section, key, content.KindHref, v)
	return v
}

// attr returns key's value for use in a non-text attribute.
func (tg *tagger) attr(key string) string {
	v := tg.t.Get(key)
	tg.m.Add(tg.section, key, content.KindAttr, v)
	return v
}

func icon(name string, class string) g.Node {
	return h.Span(h.Class("iconify "+class), g.Attr("data-icon", name), h.Aria("hidden", "true"))
}

// initials returns the first letter of every word of name.
func initials(name string) string {
	var out []rune
	start := true
	for _, r := range name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

func heading(tg *tagger, titleClass string) g.Node {
	return h.Div(h.Class("text-center max-w-3xl mx-auto mb-16"),
		h.Span(h.Class("badge badge-outline mb-4 px-4 py-2"), tg.text("badge")),
		h.H2(h.Class(titleClass),
			tg.text("mainTitle"),
			h.Span(h.Class("block bg-gradient-to-r from-primary to-accent bg-clip-text text-transparent"),
				tg.text("mainTitleHighlight"),
			),
		),
		h.P(h.Class("text-lg text-muted-foreground leading-relaxed"), tg.text("mainDescription")),
	)
}
