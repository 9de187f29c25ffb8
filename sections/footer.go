package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/navigate"
)

// Footer closes the page with company info, link groups and social links.
var Footer = &Section{
	Name: "footer",
	Defaults: content.NewTable(
		content.Entry{Key: "logoText", Value: "Warehouse Maestro"},
		content.Entry{Key: "companyDescription", Value: "Streamlining warehouse operations with intelligent inventory management, automated workflows, and real-time analytics. Trusted by logistics professionals worldwide to optimize supply chain efficiency."},
		content.Entry{Key: "contactEmail", Value: "support@warehousemaestro.com"},
		content.Entry{Key: "contactPhone", Value: "+1 (555) 789-0123"},
		content.Entry{Key: "contactAddress", Value: "2847 Industrial Blvd, Suite 200, Logistics Park"},
		content.Entry{Key: "newsletterTitle", Value: "Industry Updates"},
		content.Entry{Key: "newsletterPlaceholder", Value: "Enter your business email"},
		content.Entry{Key: "newsletterDisclaimer", Value: "Get warehouse management insights and product updates. Unsubscribe anytime."},
		content.Entry{Key: "section1Title", Value: "Platform"},
		content.Entry{Key: "section2Title", Value: "Company"},
		content.Entry{Key: "section3Title", Value: "Support"},
		content.Entry{Key: "section4Title", Value: "Compliance"},
		content.Entry{Key: "copyrightText", Value: "© 2024 Warehouse Maestro. All rights reserved."},
		content.Entry{Key: "madeWithText", Value: "by logistics experts"},
		content.Entry{Key: "socialText", Value: "Connect with us:"},
		content.Entry{Key: "social1Href", Value: "https://twitter.com/warehousemaestro"},
		content.Entry{Key: "social2Href", Value: "https://facebook.com/warehousemaestro"},
		content.Entry{Key: "social3Href", Value: "https://instagram.com/warehousemaestro"},
		content.Entry{Key: "social4Href", Value: "https://linkedin.com/company/warehousemaestro"},
		content.Entry{Key: "social5Href", Value: "https://github.com/warehousemaestro"},
	),
	build: footerNode,
}

// Link is a static, non-editable link.
type Link struct {
	Name string
	Href string
}

// LinkGroup is one footer column.
type LinkGroup struct {
	Title    string
	TitleKey string
	Links    []Link
}

// SocialLink is a social profile icon link.
type SocialLink struct {
	Name    string
	Icon    string
	Href    string
	HrefKey string
}

var footerGroupSlots = [...]struct {
	title string
	links []Link
}{
	{"section1Title", []Link{
		{"Inventory Management", "/inventory"},
		{"Order Fulfillment", "/fulfillment"},
		{"Analytics Dashboard", "/analytics"},
		{"Barcode Scanning", "/scanning"},
		{"API Integration", "/api"},
		{"Mobile App", "/mobile"},
	}},
	{"section2Title", []Link{
		{"About Us", "/about"},
		{"Case Studies", "/case-studies"},
		{"Careers", "/careers"},
		{"Press Kit", "/press"},
		{"Partner Program", "/partners"},
		{"Contact Sales", "/contact"},
	}},
	{"section3Title", []Link{
		{"Help Center", "/help"},
		{"Training Videos", "/training"},
		{"Implementation Guide", "/implementation"},
		{"Webinars", "/webinars"},
		{"Community Forum", "/community"},
		{"System Status", "/status"},
	}},
	{"section4Title", []Link{
		{"Privacy Policy", "/privacy"},
		{"Terms of Service", "/terms"},
		{"Data Security", "/security"},
		{"SOC 2 Compliance", "/soc2"},
		{"GDPR", "/gdpr"},
		{"Audit Reports", "/audits"},
	}},
}

var socialSlots = [...]struct{ name, icon, href string }{
	{"Twitter", "lucide:twitter", "social1Href"},
	{"Facebook", "lucide:facebook", "social2Href"},
	{"Instagram", "lucide:instagram", "social3Href"},
	{"LinkedIn", "lucide:linkedin", "social4Href"},
	{"GitHub", "lucide:github", "social5Href"},
}

var legalLinks = []Link{
	{"Sitemap", "/sitemap"},
	{"Accessibility", "/accessibility"},
	{"Cookie Settings", "/cookies"},
	{"Support", "/support"},
}

// FooterGroups returns the four footer link columns.
func FooterGroups(t content.Table) []LinkGroup {
	groups := make([]LinkGroup, len(footerGroupSlots))
	for i, s := range footerGroupSlots {
		groups[i] = LinkGroup{Title: t.Get(s.title), TitleKey: s.title, Links: s.links}
	}
	return groups
}

// SocialLinks returns the five social profile links.
func SocialLinks(t content.Table) []SocialLink {
	links := make([]SocialLink, len(socialSlots))
	for i, s := range socialSlots {
		links[i] = SocialLink{Name: s.name, Icon: s.icon, Href: t.Get(s.href), HrefKey: s.href}
	}
	return links
}

func footerNode(tg *tagger, _ State) g.Node {
	var groups, socials, legal []g.Node
	for _, grp := range FooterGroups(tg.t) {
		links := make([]g.Node, len(grp.Links))
		for i, l := range grp.Links {
			links[i] = h.Li(h.A(h.Href(l.Href), h.Class("text-sm text-muted-foreground hover:text-foreground transition-colors duration-200"), g.Text(l.Name)))
		}
		title, titleTag := tg.tag(grp.TitleKey)
		groups = append(groups, h.Div(h.Class("space-y-4"),
			h.H4(h.Class("font-semibold text-sm"), titleTag, g.Text(title)),
			h.Ul(h.Class("space-y-3"), g.Group(links)),
		))
	}
	for _, s := range SocialLinks(tg.t) {
		socials = append(socials, h.A(
			navigate.Attrs(tg.href(s.HrefKey), s.HrefKey),
			h.Aria("label", s.Name),
			h.Class("size-8 rounded-md bg-muted hover:bg-primary/20 flex items-center justify-center transition-colors duration-200 group"),
			icon(s.Icon, "size-4 text-muted-foreground group-hover:text-primary transition-colors"),
		))
	}
	for _, l := range legalLinks {
		legal = append(legal, h.A(h.Href(l.Href), h.Class("text-xs text-muted-foreground hover:text-foreground transition-colors"), g.Text(l.Name)))
	}

	logo, logoTag := tg.tag("logoText")
	email, emailTag := tg.tag("contactEmail")
	phone, phoneTag := tg.tag("contactPhone")
	address, addressTag := tg.tag("contactAddress")
	newsletter, newsletterTag := tg.tag("newsletterTitle")
	social, socialTag := tg.tag("socialText")

	return h.Footer(h.Class("bg-background border-t border-border/50"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8 py-16"),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-6 gap-12"),
				h.Div(h.Class("lg:col-span-2 space-y-6"),
					h.Div(
						h.A(h.Href("/"), h.Class("flex items-center space-x-2 mb-4"),
							h.Div(h.Class("size-10 rounded-lg bg-gradient-to-br from-primary to-primary/60 flex items-center justify-center"),
								h.Span(h.Class("text-primary-foreground font-bold"), g.Text(firstChar(logo))),
							),
							h.Span(h.Class("font-bold text-xl"), logoTag, g.Text(logo)),
						),
						h.P(h.Class("text-muted-foreground text-sm leading-relaxed mb-6"), tg.text("companyDescription")),
					),
					h.Div(h.Class("space-y-3"),
						contactLine("lucide:mail", emailTag, email),
						contactLine("lucide:phone", phoneTag, phone),
						contactLine("lucide:map-pin", addressTag, address),
					),
					h.Div(h.Class("space-y-3"),
						h.H4(h.Class("font-semibold text-sm"), newsletterTag, g.Text(newsletter)),
						h.Div(h.Class("flex gap-2"),
							h.Input(
								h.Type("email"),
								h.Placeholder(tg.attr("newsletterPlaceholder")),
								g.Attr(content.KindAttr.Attribute(), "newsletterPlaceholder"),
								h.Class("flex-1 px-3 py-2 text-sm border border-border rounded-md bg-background focus:outline-none focus:ring-2 focus:ring-primary/20 focus:border-primary"),
							),
							h.Button(h.Type("button"), h.Class("btn btn-sm px-3"), h.Aria("label", "Subscribe"),
								icon("lucide:arrow-right", "size-4"),
							),
						),
						h.P(h.Class("text-xs text-muted-foreground"), tg.text("newsletterDisclaimer")),
					),
				),
				h.Div(h.Class("lg:col-span-4 grid grid-cols-2 md:grid-cols-4 gap-8"), g.Group(groups)),
			),
		),
		h.Div(h.Class("border-t border-border/50 bg-muted/20"),
			h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8 py-6"),
				h.Div(h.Class("flex flex-col md:flex-row justify-between items-center gap-4"),
					h.Div(h.Class("flex items-center gap-2 text-sm text-muted-foreground"),
						tg.text("copyrightText"),
						h.Span(h.Class("hidden sm:inline"), g.Text("•")),
						h.Span(h.Class("hidden sm:inline flex items-center gap-1"),
							g.Text("Made with "),
							icon("lucide:heart", "size-3 text-red-500"),
							g.Text(" "),
							tg.text("madeWithText"),
						),
					),
					h.Div(h.Class("flex items-center gap-4"),
						h.Span(h.Class("text-sm text-muted-foreground mr-2"), socialTag, g.Text(social)),
						g.Group(socials),
					),
				),
				h.Div(h.Class("flex flex-wrap justify-center md:justify-start gap-6 mt-4 pt-4 border-t border-border/30"), g.Group(legal)),
			),
		),
	)
}

func contactLine(iconName string, tag g.Node, value string) g.Node {
	return h.Div(h.Class("flex items-center gap-3 text-sm"),
		icon(iconName, "size-4 text-primary flex-shrink-0"),
		h.Span(h.Class("text-muted-foreground"), tag, g.Text(value)),
	)
}

func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
