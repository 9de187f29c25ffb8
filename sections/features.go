package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
)

// Features lists the product capabilities.
var Features = &Section{
	Name: "features",
	Defaults: content.NewTable(
		content.Entry{Key: "badge", Value: "Platform Features"},
		content.Entry{Key: "mainTitle", Value: "Everything Your Warehouse Needs"},
		content.Entry{Key: "mainTitleHighlight", Value: "In One Platform"},
		content.Entry{Key: "mainDescription", Value: "From receiving to shipping, Warehouse Maestro gives every team the tools to move inventory accurately and on time."},
		content.Entry{Key: "feature1Title", Value: "Real-Time Inventory"},
		content.Entry{Key: "feature1Description", Value: "Track every SKU across bins, zones and locations with live stock levels and automatic cycle counts."},
		content.Entry{Key: "feature2Title", Value: "Smart Order Fulfillment"},
		content.Entry{Key: "feature2Description", Value: "Route orders to the right warehouse, batch picks and generate optimized pick paths automatically."},
		content.Entry{Key: "feature3Title", Value: "Barcode & RFID Scanning"},
		content.Entry{Key: "feature3Description", Value: "Receive, move and ship with handheld scanners or the mobile app, with instant validation."},
		content.Entry{Key: "feature4Title", Value: "Analytics Dashboard"},
		content.Entry{Key: "feature4Description", Value: "Monitor throughput, accuracy and labor productivity with dashboards built for operations leaders."},
		content.Entry{Key: "feature5Title", Value: "Integrations & API"},
		content.Entry{Key: "feature5Description", Value: "Connect your ERP, e-commerce storefronts and carriers through prebuilt connectors or a REST API."},
		content.Entry{Key: "feature6Title", Value: "Enterprise Security"},
		content.Entry{Key: "feature6Description", Value: "Role-based access, audit trails and SOC 2 compliant infrastructure keep your data protected."},
	),
	build: featuresNode,
}

// Feature is one capability card.
type Feature struct {
	Title, Description       string
	TitleKey, DescriptionKey string
	Icon                     string
	Highlight                bool
}

var featureSlots = [...]struct {
	title, description, icon string
	highlight                bool
}{
	{"feature1Title", "feature1Description", "lucide:package", true},
	{"feature2Title", "feature2Description", "lucide:truck", false},
	{"feature3Title", "feature3Description", "lucide:scan-barcode", false},
	{"feature4Title", "feature4Description", "lucide:bar-chart-3", false},
	{"feature5Title", "feature5Description", "lucide:plug", false},
	{"feature6Title", "feature6Description", "lucide:shield-check", false},
}

// FeatureList returns the six feature cards.
func FeatureList(t content.Table) []Feature {
	features := make([]Feature, len(featureSlots))
	for i, s := range featureSlots {
		features[i] = Feature{
			Title:          t.Get(s.title),
			Description:    t.Get(s.description),
			TitleKey:       s.title,
			DescriptionKey: s.description,
			Icon:           s.icon,
			Highlight:      s.highlight,
		}
	}
	return features
}

func featuresNode(tg *tagger, _ State) g.Node {
	var cards []g.Node
	for _, f := range FeatureList(tg.t) {
		class := "card border-border/50 hover:border-primary/20 transition-all duration-300 group"
		if f.Highlight {
			class = "card border-primary/40 shadow-lg shadow-primary/10 bg-gradient-to-br from-primary/5 to-accent/5 group"
		}
		cards = append(cards, h.Div(h.Class(class),
			h.Div(h.Class("card-content p-8"),
				h.Div(h.Class("size-12 rounded-xl bg-primary/10 flex items-center justify-center mb-6 group-hover:bg-primary/20 transition-colors"),
					icon(f.Icon, "size-6 text-primary"),
				),
				h.H3(h.Class("text-xl font-semibold mb-3"), tg.text(f.TitleKey)),
				h.P(h.Class("text-muted-foreground leading-relaxed"), tg.text(f.DescriptionKey)),
			),
		))
	}
	return h.Section(h.Class("py-24 bg-muted/20"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			heading(tg, "text-3xl sm:text-4xl lg:text-5xl font-bold mb-6"),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
