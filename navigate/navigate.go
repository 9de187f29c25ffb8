// Package navigate decides how a call-to-action target is followed: in-page
// scroll, boosted in-site navigation, or a new tab for other origins.
package navigate

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Kind classifies a link target.
type Kind int

const (
	Internal Kind = iota
	Anchor
	External
	Contact // mailto: and tel:
)

func (k Kind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case External:
		return "external"
	case Contact:
		return "contact"
	default:
		return "internal"
	}
}

// Classify returns the kind of href. Targets are never validated; anything
// that is not recognisably an anchor, a scheme or mail/tel is internal.
func Classify(href string) Kind {
	h := strings.ToLower(strings.TrimSpace(href))
	switch {
	case strings.HasPrefix(h, "#"):
		return Anchor
	case strings.HasPrefix(h, "mailto:"), strings.HasPrefix(h, "tel:"):
		return Contact
	case strings.HasPrefix(h, "//"), strings.Contains(h, "://"):
		return External
	default:
		return Internal
	}
}

// Attrs returns the attributes of a link to href. key is the content key the
// target came from and is exposed as data-editable-href.
func Attrs(href, key string) g.Node {
	nodes := []g.Node{
		h.Href(href),
		g.Attr("data-href", href),
	}
	if key != "" {
		nodes = append(nodes, g.Attr("data-editable-href", key))
	}
	switch Classify(href) {
	case External:
		nodes = append(nodes, h.Target("_blank"), h.Rel("noopener noreferrer"))
	case Internal:
		nodes = append(nodes, g.Attr("hx-boost", "true"))
	}
	return g.Group(nodes)
}
