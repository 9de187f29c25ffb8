package sections

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
)

// BillingCycle is the selected position of the pricing toggle. It only
// changes how the toggle looks; plan prices are the same in both cycles.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// ParseBillingCycle maps a query value to a cycle. Anything other than
// "annual" selects the initial monthly cycle.
func ParseBillingCycle(s string) BillingCycle {
	if strings.EqualFold(strings.TrimSpace(s), string(BillingAnnual)) {
		return BillingAnnual
	}
	return BillingMonthly
}

// BillingToggleID is the element id htmx swaps when the cycle changes.
const BillingToggleID = "billing-toggle"

// BillingToggle renders only the toggle, for htmx swaps.
func BillingToggle(o content.Override, st State) (templ.Component, *content.Manifest) {
	m := &content.Manifest{}
	tg := &tagger{section: Pricing.Name, t: Pricing.Defaults.Merge(o), m: m}
	return component(billingToggle(tg, st)), m
}

func billingToggle(tg *tagger, st State) g.Node {
	cycle := ParseBillingCycle(string(st.Billing))
	endpoint := st.BillingURL
	if endpoint == "" {
		endpoint = "/"
	}
	return h.Div(h.ID(BillingToggleID), h.Class("inline-flex items-center p-1 bg-muted rounded-lg"),
		billingButton(endpoint, cycle, BillingMonthly, tg.text("billingMonthly")),
		billingButton(endpoint, cycle, BillingAnnual,
			tg.text("billingAnnual"),
			h.Span(h.Class("badge badge-secondary text-xs bg-accent/20 text-accent-foreground"), tg.text("billingAnnualBadge")),
		),
	)
}

func billingButton(endpoint string, selected, cycle BillingCycle, children ...g.Node) g.Node {
	class := "px-4 py-2 text-sm font-medium rounded-md transition-all"
	if cycle == BillingAnnual {
		class += " flex items-center gap-2"
	}
	if selected == cycle {
		class += " bg-background text-foreground shadow-sm"
	} else {
		class += " text-muted-foreground hover:text-foreground"
	}
	pressed := "false"
	if selected == cycle {
		pressed = "true"
	}
	return h.Button(
		h.Type("button"),
		h.Class(class),
		h.Aria("pressed", pressed),
		g.Attr("data-billing", string(cycle)),
		g.Attr("hx-get", endpoint+"?billing="+string(cycle)),
		g.Attr("hx-target", "#"+BillingToggleID),
		g.Attr("hx-swap", "outerHTML"),
		g.Group(children),
	)
}
