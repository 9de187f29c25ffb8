package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/navigate"
)

// Hero is the first screen: headline, two calls to action and proof points.
var Hero = &Section{
	Name: "hero",
	Defaults: content.NewTable(
		content.Entry{Key: "badge", Value: "New: AI-powered demand forecasting"},
		content.Entry{Key: "mainTitle", Value: "Run Every Warehouse"},
		content.Entry{Key: "mainTitleHighlight", Value: "Like Clockwork"},
		content.Entry{Key: "mainDescription", Value: "Warehouse Maestro unifies inventory, fulfillment and analytics in one platform, so your team ships faster with fewer errors across every location."},
		content.Entry{Key: "primaryCTA", Value: "Start Free Trial"},
		content.Entry{Key: "primaryCTAHref", Value: "#pricing"},
		content.Entry{Key: "secondaryCTA", Value: "Talk to Sales"},
		content.Entry{Key: "secondaryCTAHref", Value: "#contact"},
		content.Entry{Key: "stat1Value", Value: "35%"},
		content.Entry{Key: "stat1Label", Value: "Faster order picking"},
		content.Entry{Key: "stat2Value", Value: "99.8%"},
		content.Entry{Key: "stat2Label", Value: "Inventory accuracy"},
		content.Entry{Key: "stat3Value", Value: "2,000+"},
		content.Entry{Key: "stat3Label", Value: "Warehouses managed"},
	),
	build: heroNode,
}

var heroStatSlots = [...]struct{ value, label string }{
	{"stat1Value", "stat1Label"},
	{"stat2Value", "stat2Label"},
	{"stat3Value", "stat3Label"},
}

// HeroStats returns the three proof points under the hero headline.
func HeroStats(t content.Table) []Stat {
	stats := make([]Stat, len(heroStatSlots))
	for i, s := range heroStatSlots {
		stats[i] = Stat{Value: t.Get(s.value), Label: t.Get(s.label), ValueKey: s.value, LabelKey: s.label}
	}
	return stats
}

func heroNode(tg *tagger, _ State) g.Node {
	var stats []g.Node
	for _, s := range HeroStats(tg.t) {
		stats = append(stats, h.Div(h.Class("text-center"),
			h.Div(h.Class("text-3xl font-bold text-primary"), tg.text(s.ValueKey)),
			h.Div(h.Class("text-sm text-muted-foreground"), tg.text(s.LabelKey)),
		))
	}
	return h.Section(h.Class("relative overflow-hidden py-24 lg:py-32"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8 text-center max-w-4xl"),
			h.Span(h.Class("badge badge-outline mb-6 px-4 py-2"),
				icon("lucide:sparkles", "size-4 mr-2"),
				tg.text("badge"),
			),
			h.H1(h.Class("text-4xl sm:text-5xl lg:text-6xl font-extrabold tracking-tight mb-6"),
				tg.text("mainTitle"),
				h.Span(h.Class("block bg-gradient-to-r from-primary to-accent bg-clip-text text-transparent"),
					tg.text("mainTitleHighlight"),
				),
			),
			h.P(h.Class("text-lg sm:text-xl text-muted-foreground leading-relaxed mb-10"), tg.text("mainDescription")),
			h.Div(h.Class("flex flex-col sm:flex-row gap-4 justify-center mb-16"),
				h.A(h.Class("btn btn-primary btn-lg shadow-lg"),
					navigate.Attrs(tg.href("primaryCTAHref"), "primaryCTAHref"),
					icon("lucide:zap", "size-4 mr-2"),
					tg.text("primaryCTA"),
				),
				h.A(h.Class("btn btn-outline btn-lg"),
					navigate.Attrs(tg.href("secondaryCTAHref"), "secondaryCTAHref"),
					tg.text("secondaryCTA"),
					icon("lucide:arrow-right", "ml-2 size-4"),
				),
			),
			h.Div(h.Class("grid grid-cols-1 sm:grid-cols-3 gap-8"), g.Group(stats)),
		),
	)
}
