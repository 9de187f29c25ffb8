package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/navigate"
)

// About tells the company story: stats, values, team and a testimonial.
var About = &Section{
	Name: "about",
	Defaults: content.NewTable(
		content.Entry{Key: "badge", Value: "About Us"},
		content.Entry{Key: "mainTitle", Value: "Building the Future of"},
		content.Entry{Key: "mainTitleHighlight", Value: "Web Development"},
		content.Entry{Key: "mainDescription", Value: "We're a passionate team of developers, designers, and innovators on a mission to make web development accessible, powerful, and enjoyable for everyone."},
		content.Entry{Key: "storyTitle", Value: "Our Story"},
		content.Entry{Key: "storyParagraph1", Value: "Founded in 2019 by a team of frustrated developers, we set out to solve a simple problem: why was building beautiful, functional websites still so complicated?"},
		content.Entry{Key: "storyParagraph2", Value: "After years of wrestling with complex toolchains, inconsistent designs, and endless debugging sessions, we knew there had to be a better way. So we built it."},
		content.Entry{Key: "storyParagraph3", Value: "Today, we're proud to serve over 50,000 developers and businesses worldwide, helping them bring their ideas to life faster and more beautifully than ever before."},
		content.Entry{Key: "storyCTA", Value: "Read Our Full Story"},
		content.Entry{Key: "storyCTAHref", Value: "/blog/our-story"},
		content.Entry{Key: "quoteText", Value: "We believe great design should be accessible to everyone, not just those with big budgets."},
		content.Entry{Key: "quoteAuthor", Value: "Sarah Johnson, CEO"},
		content.Entry{Key: "stat1Value", Value: "2019"},
		content.Entry{Key: "stat1Label", Value: "Founded"},
		content.Entry{Key: "stat2Value", Value: "50K+"},
		content.Entry{Key: "stat2Label", Value: "Happy Customers"},
		content.Entry{Key: "stat3Value", Value: "99.9%"},
		content.Entry{Key: "stat3Label", Value: "Uptime"},
		content.Entry{Key: "stat4Value", Value: "25+"},
		content.Entry{Key: "stat4Label", Value: "Countries"},
		content.Entry{Key: "valuesTitle", Value: "Our Values"},
		content.Entry{Key: "valuesDescription", Value: "The principles that guide everything we do and every decision we make."},
		content.Entry{Key: "value1Title", Value: "Mission Driven"},
		content.Entry{Key: "value1Description", Value: "We're committed to democratizing web development and making beautiful, functional websites accessible to everyone."},
		content.Entry{Key: "value2Title", Value: "Innovation First"},
		content.Entry{Key: "value2Description", Value: "We constantly push the boundaries of what's possible, bringing cutting-edge technology to your fingertips."},
		content.Entry{Key: "value3Title", Value: "Customer Obsessed"},
		content.Entry{Key: "value3Description", Value: "Your success is our success. We build every feature with our users' needs and goals at the center."},
		content.Entry{Key: "value4Title", Value: "Global Impact"},
		content.Entry{Key: "value4Description", Value: "From startups to enterprises, we're helping businesses worldwide transform their digital presence."},
		content.Entry{Key: "teamTitle", Value: "Meet Our Team"},
		content.Entry{Key: "teamDescription", Value: "The talented individuals behind our success, working together to build something amazing."},
		content.Entry{Key: "team1Name", Value: "Sarah Johnson"},
		content.Entry{Key: "team1Role", Value: "CEO & Co-Founder"},
		content.Entry{Key: "team1Bio", Value: "Former VP of Product at TechCorp. 15+ years building scalable products."},
		content.Entry{Key: "team2Name", Value: "Michael Chen"},
		content.Entry{Key: "team2Role", Value: "CTO & Co-Founder"},
		content.Entry{Key: "team2Bio", Value: "Ex-Google engineer. Expert in distributed systems and web performance."},
		content.Entry{Key: "team3Name", Value: "Emily Rodriguez"},
		content.Entry{Key: "team3Role", Value: "Head of Design"},
		content.Entry{Key: "team3Bio", Value: "Award-winning designer with experience at top design agencies."},
		content.Entry{Key: "team4Name", Value: "David Kim"},
		content.Entry{Key: "team4Role", Value: "VP of Engineering"},
		content.Entry{Key: "team4Bio", Value: "Former Meta engineer. Passionate about developer experience and tools."},
		content.Entry{Key: "teamCTA", Value: "View All Team Members"},
		content.Entry{Key: "teamCTAHref", Value: "/team"},
		content.Entry{Key: "testimonialQuote", Value: "This platform has completely transformed how we approach web development. What used to take weeks now takes days, and the results are consistently beautiful."},
		content.Entry{Key: "testimonialAuthorName", Value: "Jessica Davis"},
		content.Entry{Key: "testimonialAuthorTitle", Value: "CTO, TechStartup Inc."},
	),
	build: aboutNode,
}

// Stat is a headline number.
type Stat struct {
	Value, Label       string
	ValueKey, LabelKey string
	Icon               string
}

// Value is one company value card.
type Value struct {
	Title, Description       string
	TitleKey, DescriptionKey string
	Icon                     string
}

// Member is one team card. Initials stand in for a photo.
type Member struct {
	Name, Role, Bio          string
	Initials                 string
	NameKey, RoleKey, BioKey string
}

var aboutStatSlots = [...]struct{ value, label, icon string }{
	{"stat1Value", "stat1Label", "lucide:award"},
	{"stat2Value", "stat2Label", "lucide:users"},
	{"stat3Value", "stat3Label", "lucide:trending-up"},
	{"stat4Value", "stat4Label", "lucide:globe"},
}

var valueSlots = [...]struct{ title, description, icon string }{
	{"value1Title", "value1Description", "lucide:target"},
	{"value2Title", "value2Description", "lucide:lightbulb"},
	{"value3Title", "value3Description", "lucide:heart"},
	{"value4Title", "value4Description", "lucide:globe"},
}

var teamSlots = [...]struct{ name, role, bio string }{
	{"team1Name", "team1Role", "team1Bio"},
	{"team2Name", "team2Role", "team2Bio"},
	{"team3Name", "team3Role", "team3Bio"},
	{"team4Name", "team4Role", "team4Bio"},
}

// Stats returns the four about-section stats.
func Stats(t content.Table) []Stat {
	stats := make([]Stat, len(aboutStatSlots))
	for i, s := range aboutStatSlots {
		stats[i] = Stat{Value: t.Get(s.value), Label: t.Get(s.label), ValueKey: s.value, LabelKey: s.label, Icon: s.icon}
	}
	return stats
}

// Values returns the four company values.
func Values(t content.Table) []Value {
	values := make([]Value, len(valueSlots))
	for i, s := range valueSlots {
		values[i] = Value{
			Title:          t.Get(s.title),
			Description:    t.Get(s.description),
			TitleKey:       s.title,
			DescriptionKey: s.description,
			Icon:           s.icon,
		}
	}
	return values
}

// Team returns the four team members.
func Team(t content.Table) []Member {
	team := make([]Member, len(teamSlots))
	for i, s := range teamSlots {
		name := t.Get(s.name)
		team[i] = Member{
			Name:     name,
			Role:     t.Get(s.role),
			Bio:      t.Get(s.bio),
			Initials: initials(name),
			NameKey:  s.name,
			RoleKey:  s.role,
			BioKey:   s.bio,
		}
	}
	return team
}

func aboutNode(tg *tagger, _ State) g.Node {
	var stats, values, team []g.Node
	for _, s := range Stats(tg.t) {
		stats = append(stats, h.Div(h.Class("card text-center border-border/50 hover:border-primary/20 transition-colors"),
			h.Div(h.Class("card-content p-6"),
				h.Div(h.Class("size-12 mx-auto mb-4 rounded-full bg-primary/10 flex items-center justify-center"),
					icon(s.Icon, "size-6 text-primary"),
				),
				h.Div(h.Class("text-3xl font-bold mb-2"), tg.text(s.ValueKey)),
				h.Div(h.Class("text-sm text-muted-foreground"), tg.text(s.LabelKey)),
			),
		))
	}
	for _, v := range Values(tg.t) {
		values = append(values, h.Div(h.Class("card border-border/50 hover:border-primary/20 transition-all duration-300 group"),
			h.Div(h.Class("card-content p-8"),
				h.Div(h.Class("flex items-start gap-4"),
					h.Div(h.Class("size-12 rounded-xl bg-primary/10 flex items-center justify-center group-hover:bg-primary/20 transition-colors"),
						icon(v.Icon, "size-6 text-primary"),
					),
					h.Div(h.Class("flex-1"),
						h.H4(h.Class("text-xl font-semibold mb-3"), tg.text(v.TitleKey)),
						h.P(h.Class("text-muted-foreground leading-relaxed"), tg.text(v.DescriptionKey)),
					),
				),
			),
		))
	}
	for _, m := range Team(tg.t) {
		team = append(team, h.Div(h.Class("card border-border/50 hover:border-primary/20 transition-all duration-300 group"),
			h.Div(h.Class("card-content p-6 text-center"),
				h.Div(h.Class("size-20 mx-auto mb-4 rounded-full bg-gradient-to-br from-primary to-primary/60 flex items-center justify-center text-primary-foreground font-bold text-xl"),
					g.Text(m.Initials),
				),
				h.H4(h.Class("font-semibold mb-1"), tg.text(m.NameKey)),
				h.P(h.Class("text-sm text-primary mb-3"), tg.text(m.RoleKey)),
				h.P(h.Class("text-sm text-muted-foreground leading-relaxed"), tg.text(m.BioKey)),
			),
		))
	}

	stars := make([]g.Node, 5)
	for i := range stars {
		stars[i] = icon("lucide:star", "size-5 text-primary")
	}

	p1, p1Tag := tg.tag("storyParagraph1")
	p2, p2Tag := tg.tag("storyParagraph2")
	p3, p3Tag := tg.tag("storyParagraph3")

	return h.Section(h.Class("py-24 bg-gradient-to-b from-background to-muted/20"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			heading(tg, "text-3xl sm:text-4xl lg:text-5xl font-bold mb-6"),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center mb-20"),
				h.Div(h.Class("space-y-6"),
					h.H3(h.Class("text-2xl font-bold"), tg.text("storyTitle")),
					h.Div(h.Class("space-y-4 text-muted-foreground"),
						h.P(p1Tag, g.Text(p1)),
						h.P(p2Tag, g.Text(p2)),
						h.P(p3Tag, g.Text(p3)),
					),
					h.A(h.Class("btn btn-primary group"),
						navigate.Attrs(tg.href("storyCTAHref"), "storyCTAHref"),
						tg.text("storyCTA"),
						icon("lucide:arrow-right", "ml-2 size-4 transition-transform group-hover:translate-x-1"),
					),
				),
				h.Div(h.Class("relative"),
					h.Div(h.Class("card border-border/50 overflow-hidden"),
						h.Div(h.Class("aspect-video bg-gradient-to-br from-primary/20 via-background to-accent/20 flex items-center justify-center"),
							h.Div(h.Class("text-center space-y-4"),
								h.Div(h.Class("size-16 mx-auto rounded-full bg-primary/20 flex items-center justify-center"),
									icon("lucide:quote", "size-8 text-primary"),
								),
								g.El("blockquote", h.Class("text-lg font-medium max-w-sm"), tg.text("quoteText")),
								h.P(h.Class("text-sm text-muted-foreground"), g.Text("- "), tg.text("quoteAuthor")),
							),
						),
					),
				),
			),
			h.Div(h.Class("grid grid-cols-2 lg:grid-cols-4 gap-8 mb-20"), g.Group(stats)),
			h.Div(h.Class("mb-20"),
				h.Div(h.Class("text-center max-w-2xl mx-auto mb-12"),
					h.H3(h.Class("text-3xl font-bold mb-4"), tg.text("valuesTitle")),
					h.P(h.Class("text-muted-foreground"), tg.text("valuesDescription")),
				),
				h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 gap-8"), g.Group(values)),
			),
			h.Div(h.Class("text-center"),
				h.Div(h.Class("max-w-2xl mx-auto mb-12"),
					h.H3(h.Class("text-3xl font-bold mb-4"), tg.text("teamTitle")),
					h.P(h.Class("text-muted-foreground"), tg.text("teamDescription")),
				),
				h.Div(h.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-8 mb-12"), g.Group(team)),
				h.Div(h.Class("flex justify-center"),
					h.A(h.Class("btn btn-outline group"),
						navigate.Attrs(tg.href("teamCTAHref"), "teamCTAHref"),
						tg.text("teamCTA"),
						icon("lucide:arrow-right", "ml-2 size-4 transition-transform group-hover:translate-x-1"),
					),
				),
			),
			h.Div(h.Class("mt-20"),
				h.Div(h.Class("card border-primary/20 bg-gradient-to-br from-primary/5 to-accent/5"),
					h.Div(h.Class("card-content p-8 lg:p-12 text-center"),
						h.Div(h.Class("flex justify-center mb-6"), g.Group(stars)),
						g.El("blockquote", h.Class("text-xl lg:text-2xl font-medium mb-6 max-w-3xl mx-auto"), tg.text("testimonialQuote")),
						h.Div(h.Class("flex items-center justify-center gap-4"),
							h.Div(h.Class("size-12 rounded-full bg-gradient-to-br from-secondary to-accent flex items-center justify-center text-secondary-foreground font-bold"),
								g.Text(initials(tg.get("testimonialAuthorName"))),
							),
							h.Div(h.Class("text-left"),
								h.Div(h.Class("font-semibold"), tg.text("testimonialAuthorName")),
								h.Div(h.Class("text-sm text-muted-foreground"), tg.text("testimonialAuthorTitle")),
							),
						),
					),
				),
			),
		),
	)
}
