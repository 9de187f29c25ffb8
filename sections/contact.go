package sections

import (
	"net/mail"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/navigate"
)

// Contact offers the sales channels and a short enquiry form.
var Contact = &Section{
	Name: "contact",
	Defaults: content.NewTable(
		content.Entry{Key: "badge", Value: "Get in Touch"},
		content.Entry{Key: "mainTitle", Value: "Let's Optimize Your"},
		content.Entry{Key: "mainTitleHighlight", Value: "Warehouse Together"},
		content.Entry{Key: "mainDescription", Value: "Tell us about your operation and a logistics specialist will reach out within one business day."},
		content.Entry{Key: "channel1Label", Value: "Email us"},
		content.Entry{Key: "channel1Value", Value: "sales@warehousemaestro.com"},
		content.Entry{Key: "channel1Href", Value: "mailto:sales@warehousemaestro.com"},
		content.Entry{Key: "channel2Label", Value: "Call us"},
		content.Entry{Key: "channel2Value", Value: "+1 (555) 789-0123"},
		content.Entry{Key: "channel2Href", Value: "tel:+15557890123"},
		content.Entry{Key: "channel3Label", Value: "Visit us"},
		content.Entry{Key: "channel3Value", Value: "2847 Industrial Blvd, Suite 200, Logistics Park"},
		content.Entry{Key: "channel3Href", Value: "https://maps.google.com/?q=2847+Industrial+Blvd"},
		content.Entry{Key: "formTitle", Value: "Request a Demo"},
		content.Entry{Key: "formNameLabel", Value: "Full name"},
		content.Entry{Key: "formNamePlaceholder", Value: "Jane Smith"},
		content.Entry{Key: "formEmailLabel", Value: "Business email"},
		content.Entry{Key: "formEmailPlaceholder", Value: "jane@company.com"},
		content.Entry{Key: "formCompanyLabel", Value: "Company"},
		content.Entry{Key: "formCompanyPlaceholder", Value: "Acme Logistics"},
		content.Entry{Key: "formMessageLabel", Value: "How can we help?"},
		content.Entry{Key: "formMessagePlaceholder", Value: "Number of warehouses, order volume, current systems..."},
		content.Entry{Key: "formSubmit", Value: "Send Message"},
		content.Entry{Key: "formAction", Value: "/contact"},
		content.Entry{Key: "formSuccess", Value: "Thanks! Our team will be in touch shortly."},
		content.Entry{Key: "formError", Value: "Please enter your name and a business email."},
	),
	build: contactNode,
}

// ContactFormID is the element id the enquiry form swaps itself into.
const ContactFormID = "contact-form"

// Channel is one way to reach the sales team.
type Channel struct {
	Label, Value, Href          string
	LabelKey, ValueKey, HrefKey string
	Icon                        string
}

var channelSlots = [...]struct{ label, value, href, icon string }{
	{"channel1Label", "channel1Value", "channel1Href", "lucide:mail"},
	{"channel2Label", "channel2Value", "channel2Href", "lucide:phone"},
	{"channel3Label", "channel3Value", "channel3Href", "lucide:map-pin"},
}

// ContactChannels returns the three contact channels.
func ContactChannels(t content.Table) []Channel {
	channels := make([]Channel, len(channelSlots))
	for i, s := range channelSlots {
		channels[i] = Channel{
			Label:    t.Get(s.label),
			Value:    t.Get(s.value),
			Href:     t.Get(s.href),
			LabelKey: s.label,
			ValueKey: s.value,
			HrefKey:  s.href,
			Icon:     s.icon,
		}
	}
	return channels
}

// Enquiry is a submitted contact form.
type Enquiry struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Company string `form:"company"`
	Message string `form:"message"`
}

// Valid reports whether the enquiry has a name and a parseable email.
func (e Enquiry) Valid() bool {
	if strings.TrimSpace(e.Name) == "" {
		return false
	}
	_, err := mail.ParseAddress(e.Email)
	return err == nil
}

// FormStatus is the outcome shown above the form after a submission.
type FormStatus int

const (
	FormBlank FormStatus = iota
	FormSent
	FormInvalid
)

// ContactForm renders only the enquiry form, for htmx swaps after submit.
func ContactForm(o content.Override, e Enquiry, status FormStatus) (templ.Component, *content.Manifest) {
	m := &content.Manifest{}
	tg := &tagger{section: Contact.Name, t: Contact.Defaults.Merge(o), m: m}
	return component(contactForm(tg, e, status)), m
}

func contactNode(tg *tagger, st State) g.Node {
	var channels []g.Node
	for _, c := range ContactChannels(tg.t) {
		channels = append(channels, h.A(h.Class("card flex items-center gap-4 p-6 border-border/50 hover:border-primary/20 transition-colors"),
			navigate.Attrs(tg.href(c.HrefKey), c.HrefKey),
			h.Div(h.Class("size-12 rounded-full bg-primary/10 flex items-center justify-center"),
				icon(c.Icon, "size-5 text-primary"),
			),
			h.Div(
				h.Div(h.Class("text-sm text-muted-foreground"), tg.text(c.LabelKey)),
				h.Div(h.Class("font-semibold"), tg.text(c.ValueKey)),
			),
		))
	}
	return h.Section(h.Class("py-24 bg-background"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			heading(tg, "text-3xl sm:text-4xl lg:text-5xl font-bold mb-6"),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-5 gap-12 max-w-6xl mx-auto"),
				h.Div(h.Class("lg:col-span-2 space-y-4"), g.Group(channels)),
				h.Div(h.Class("lg:col-span-3"), contactForm(tg, st.Enquiry, st.Form)),
			),
		),
	)
}

func contactForm(tg *tagger, e Enquiry, status FormStatus) g.Node {
	action := tg.href("formAction")
	var notice g.Node
	switch status {
	case FormSent:
		notice = h.P(h.Class("alert alert-success"), h.Role("status"), tg.text("formSuccess"))
	case FormInvalid:
		notice = h.P(h.Class("alert alert-error"), h.Role("alert"), tg.text("formError"))
	}
	return g.El("form", h.ID(ContactFormID), h.Class("card p-8 space-y-6 border-border/50"),
		h.Method("post"),
		h.Action(action),
		g.Attr(content.KindHref.Attribute(), "formAction"),
		g.Attr("hx-post", action),
		g.Attr("hx-target", "#"+ContactFormID),
		g.Attr("hx-swap", "outerHTML"),
		h.H3(h.Class("text-2xl font-bold"), tg.text("formTitle")),
		notice,
		formField(tg, "name", "text", e.Name, "formNameLabel", "formNamePlaceholder", true),
		formField(tg, "email", "email", e.Email, "formEmailLabel", "formEmailPlaceholder", true),
		formField(tg, "company", "text", e.Company, "formCompanyLabel", "formCompanyPlaceholder", false),
		h.Div(h.Class("space-y-2"),
			g.El("label", h.For("contact-message"), h.Class("text-sm font-medium"), tg.text("formMessageLabel")),
			h.Textarea(h.ID("contact-message"), h.Name("message"), h.Rows("4"),
				h.Placeholder(tg.attr("formMessagePlaceholder")),
				g.Attr(content.KindAttr.Attribute(), "formMessagePlaceholder"),
				h.Class("w-full px-3 py-2 text-sm border border-border rounded-md bg-background"),
				g.Text(e.Message),
			),
		),
		h.Button(h.Type("submit"), h.Class("btn btn-primary w-full"), tg.text("formSubmit")),
	)
}

func formField(tg *tagger, name, typ, value, labelKey, placeholderKey string, required bool) g.Node {
	id := "contact-" + name
	return h.Div(h.Class("space-y-2"),
		g.El("label", h.For(id), h.Class("text-sm font-medium"), tg.text(labelKey)),
		h.Input(h.ID(id), h.Name(name), h.Type(typ), h.Value(value),
			h.Placeholder(tg.attr(placeholderKey)),
			g.Attr(content.KindAttr.Attribute(), placeholderKey),
			g.If(required, h.Required()),
			h.Class("w-full px-3 py-2 text-sm border border-border rounded-md bg-background"),
		),
	)
}
