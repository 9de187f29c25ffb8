package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/navigate"
)

// Pricing shows the three plans and the billing toggle.
var Pricing = &Section{
	Name: "pricing",
	Defaults: content.NewTable(
		content.Entry{Key: "badge", Value: "Flexible Pricing"},
		content.Entry{Key: "mainTitle", Value: "Scale Your Warehouse Operations"},
		content.Entry{Key: "mainTitleHighlight", Value: "Without Breaking the Bank"},
		content.Entry{Key: "mainDescription", Value: "Choose the perfect plan for your warehouse size and complexity. Start with our free trial and upgrade as your business grows. No setup fees, no long-term contracts."},
		content.Entry{Key: "billingMonthly", Value: "Monthly"},
		content.Entry{Key: "billingAnnual", Value: "Annual"},
		content.Entry{Key: "billingAnnualBadge", Value: "Save 25%"},
		content.Entry{Key: "plan1Name", Value: "Starter Warehouse"},
		content.Entry{Key: "plan1Description", Value: "Perfect for small warehouses and distribution centers"},
		content.Entry{Key: "plan1Price", Value: "$299"},
		content.Entry{Key: "plan1Period", Value: "/month"},
		content.Entry{Key: "plan1CTA", Value: "Start Free Trial"},
		content.Entry{Key: "plan1CTAHref", Value: "/"},
		content.Entry{Key: "plan2Name", Value: "Professional"},
		content.Entry{Key: "plan2Description", Value: "Complete solution for growing logistics operations"},
		content.Entry{Key: "plan2Price", Value: "$799"},
		content.Entry{Key: "plan2Period", Value: "/month"},
		content.Entry{Key: "plan2Badge", Value: "Most Popular"},
		content.Entry{Key: "plan2CTA", Value: "Start Free Trial"},
		content.Entry{Key: "plan2CTAHref", Value: "/"},
		content.Entry{Key: "plan2Trial", Value: "30-day free trial • Implementation support included"},
		content.Entry{Key: "plan3Name", Value: "Enterprise"},
		content.Entry{Key: "plan3Description", Value: "Advanced ERP for large-scale warehouse networks"},
		content.Entry{Key: "plan3Price", Value: "Custom"},
		content.Entry{Key: "plan3Badge", Value: "Best Value"},
		content.Entry{Key: "plan3CTA", Value: "Get Custom Quote"},
		content.Entry{Key: "plan3CTAHref", Value: "/"},
		content.Entry{Key: "bottomTitle", Value: "Need a custom warehouse solution?"},
		content.Entry{Key: "bottomDescription", Value: "Our enterprise team specializes in complex multi-warehouse implementations with custom integrations, advanced analytics, and dedicated support for logistics operations at scale."},
		content.Entry{Key: "bottomCTA", Value: "Schedule Consultation"},
		content.Entry{Key: "bottomCTAHref", Value: "/"},
	),
	build: pricingNode,
}

// PlanKeys are the content keys a plan is read from. An empty key means the
// plan has no such field.
type PlanKeys struct {
	Name, Description, Price, Period, Badge, CTA, CTAHref, Trial string
}

// Plan is one pricing card.
type Plan struct {
	Name        string
	Description string
	Price       string
	Period      string
	Badge       string
	CTA         string
	CTAHref     string
	Trial       string
	Features    []string
	Popular     bool
	Keys        PlanKeys
}

type planSlot struct {
	keys     PlanKeys
	features []string
	popular  bool
}

var planSlots = [...]planSlot{
	{
		keys: PlanKeys{
			Name: "plan1Name", Description: "plan1Description", Price: "plan1Price", Period: "plan1Period",
			CTA: "plan1CTA", CTAHref: "plan1CTAHref",
		},
		features: []string{
			"Up to 10,000 SKUs",
			"Basic inventory tracking",
			"Order management",
			"Barcode scanning",
			"Standard reporting",
			"Email support",
			"Mobile app access",
			"2 warehouse locations",
		},
	},
	{
		keys: PlanKeys{
			Name: "plan2Name", Description: "plan2Description", Price: "plan2Price", Period: "plan2Period",
			Badge: "plan2Badge", CTA: "plan2CTA", CTAHref: "plan2CTAHref", Trial: "plan2Trial",
		},
		features: []string{
			"Unlimited SKUs",
			"Advanced inventory optimization",
			"Multi-channel order processing",
			"RFID & barcode support",
			"Real-time analytics dashboard",
			"Priority phone support",
			"API integrations",
			"Unlimited warehouse locations",
			"Automated reorder points",
			"Pick path optimization",
		},
		popular: true,
	},
	{
		keys: PlanKeys{
			Name: "plan3Name", Description: "plan3Description", Price: "plan3Price",
			Badge: "plan3Badge", CTA: "plan3CTA", CTAHref: "plan3CTAHref",
		},
		features: []string{
			"Everything in Professional",
			"Custom ERP integrations",
			"Advanced forecasting AI",
			"Multi-company management",
			"24/7 dedicated support",
			"Custom reporting suite",
			"White-label options",
			"Dedicated account manager",
			"On-site training included",
			"SLA guarantees",
		},
	},
}

// Plans projects effective pricing content into the three plans, in order.
func Plans(t content.Table) []Plan {
	get := func(key string) string {
		if key == "" {
			return ""
		}
		return t.Get(key)
	}
	plans := make([]Plan, len(planSlots))
	for i, s := range planSlots {
		plans[i] = Plan{
			Name:        get(s.keys.Name),
			Description: get(s.keys.Description),
			Price:       get(s.keys.Price),
			Period:      get(s.keys.Period),
			Badge:       get(s.keys.Badge),
			CTA:         get(s.keys.CTA),
			CTAHref:     get(s.keys.CTAHref),
			Trial:       get(s.keys.Trial),
			Features:    s.features,
			Popular:     s.popular,
			Keys:        s.keys,
		}
	}
	return plans
}

func pricingNode(tg *tagger, st State) g.Node {
	plans := Plans(tg.t)
	cards := make([]g.Node, len(plans))
	for i, p := range plans {
		cards[i] = planCard(tg, p)
	}
	return h.Section(h.Class("py-24 bg-background"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("text-center max-w-3xl mx-auto mb-16"),
				h.Span(h.Class("badge badge-outline mb-4 px-4 py-2 bg-accent/10 border-accent/20"), tg.text("badge")),
				h.H2(h.Class("text-3xl sm:text-4xl lg:text-5xl font-bold mb-6"),
					tg.text("mainTitle"),
					h.Span(h.Class("block bg-gradient-to-r from-primary to-accent bg-clip-text text-transparent"),
						tg.text("mainTitleHighlight"),
					),
				),
				h.P(h.Class("text-lg text-muted-foreground leading-relaxed mb-8"), tg.text("mainDescription")),
				billingToggle(tg, st),
			),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-3 gap-8 max-w-7xl mx-auto"), g.Group(cards)),
			h.Div(h.Class("text-center mt-16 max-w-2xl mx-auto"),
				h.H3(h.Class("text-xl font-semibold mb-4 text-foreground"), tg.text("bottomTitle")),
				h.P(h.Class("text-muted-foreground mb-6"), tg.text("bottomDescription")),
				h.A(h.Class("btn btn-outline btn-lg border-primary/20 hover:bg-primary/5 hover:border-primary/40"),
					navigate.Attrs(tg.href("bottomCTAHref"), "bottomCTAHref"),
					tg.text("bottomCTA"),
				),
			),
		),
	)
}

func planCard(tg *tagger, p Plan) g.Node {
	cardClass := "card relative overflow-hidden transition-all duration-300 hover:shadow-lg "
	headerClass := "card-header relative text-center pb-8"
	ctaClass := "btn w-full text-base py-6 transition-all duration-300 "
	if p.Popular {
		cardClass += "border-primary/50 shadow-lg shadow-primary/10 lg:scale-105 bg-gradient-to-br from-primary/5 via-background to-accent/5"
		headerClass += " pt-10"
		ctaClass += "btn-primary bg-primary hover:bg-primary/90 shadow-lg hover:shadow-xl"
	} else {
		cardClass += "border-border/50 hover:border-primary/20 bg-card"
		ctaClass += "btn-secondary bg-secondary hover:bg-secondary/80 text-secondary-foreground"
	}

	features := make([]g.Node, len(p.Features))
	for i, f := range p.Features {
		features[i] = h.Li(h.Class("flex items-center gap-3"),
			h.Div(h.Class("size-5 rounded-full bg-primary/10 flex items-center justify-center flex-shrink-0"),
				icon("lucide:check", "size-3 text-primary"),
			),
			h.Span(h.Class("text-sm text-foreground"), g.Text(f)),
		)
	}

	return h.Div(h.Class(cardClass), g.Attr("data-plan", p.Keys.Name),
		g.Iff(p.Popular && p.Keys.Badge != "", func() g.Node {
			return h.Div(h.Class("absolute top-0 left-1/2 transform -translate-x-1/2 -translate-y-1/2 z-10"),
				h.Span(h.Class("badge bg-primary text-primary-foreground px-4 py-1 shadow-lg"),
					icon("lucide:star", "size-3 mr-1"),
					tg.text(p.Keys.Badge),
				),
			)
		}),
		h.Div(h.Class(headerClass),
			g.Iff(!p.Popular && p.Keys.Badge != "" && p.Badge != "", func() g.Node {
				return h.Span(h.Class("badge badge-outline mb-4 mx-auto w-fit bg-accent/10 border-accent/20"), tg.text(p.Keys.Badge))
			}),
			h.H3(h.Class("card-title text-2xl mb-2 text-foreground"), tg.text(p.Keys.Name)),
			h.P(h.Class("card-description text-base mb-6"), tg.text(p.Keys.Description)),
			h.Div(h.Class("flex items-end justify-center gap-1"),
				h.Span(h.Class("text-4xl font-bold text-primary"), tg.text(p.Keys.Price)),
				g.Iff(p.Keys.Period != "" && p.Period != "", func() g.Node {
					return h.Span(h.Class("text-muted-foreground mb-1"), tg.text(p.Keys.Period))
				}),
			),
		),
		h.Div(h.Class("card-content relative space-y-6"),
			h.Ul(h.Class("space-y-3"), g.Group(features)),
			h.A(h.Class(ctaClass),
				navigate.Attrs(tg.href(p.Keys.CTAHref), p.Keys.CTAHref),
				g.If(p.Popular, icon("lucide:zap", "size-4 mr-2")),
				tg.text(p.Keys.CTA),
			),
			g.Iff(p.Keys.Trial != "", func() g.Node {
				return h.P(h.Class("text-center text-sm text-muted-foreground"), tg.text(p.Keys.Trial))
			}),
		),
	)
}
