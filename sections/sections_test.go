package sections

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestrohq/landing/content"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// tags collects every tag in the markup, keyed by attribute.
func tags(doc *goquery.Selection) []string {
	var out []string
	for _, attr := range []string{"data-editable", "data-editable-href", "data-editable-attr"} {
		doc.Find("[" + attr + "]").Each(func(_ int, s *goquery.Selection) {
			v, _ := s.Attr(attr)
			out = append(out, attr+"="+v)
		})
	}
	return out
}

func TestPlansOverridePrice(t *testing.T) {
	plans := Plans(Pricing.Defaults.Merge(content.Override{"plan2Price": "$999"}))
	require.Len(t, plans, 3)
	assert.Equal(t, "$299", plans[0].Price)
	assert.Equal(t, "$999", plans[1].Price)
	assert.Equal(t, "Custom", plans[2].Price)
	assert.Equal(t, []string{"Starter Warehouse", "Professional", "Enterprise"},
		[]string{plans[0].Name, plans[1].Name, plans[2].Name})
}

func TestPlansFixedOrder(t *testing.T) {
	same := content.Override{"plan1Price": "$1", "plan2Price": "$1", "plan3Price": "$1"}
	plans := Plans(Pricing.Defaults.Merge(same))
	require.Len(t, plans, 3)
	for i, p := range plans {
		assert.Equal(t, "$1", p.Price)
		assert.Equal(t, planSlots[i].keys, p.Keys)
	}
	assert.False(t, plans[0].Popular)
	assert.True(t, plans[1].Popular)
	assert.False(t, plans[2].Popular)
	assert.Empty(t, plans[2].Period, "enterprise plan has no period")
	assert.Empty(t, plans[0].Badge, "starter plan has no badge")
	assert.Len(t, plans[1].Features, 10)
}

func TestDerivedRecordLengths(t *testing.T) {
	assert.Len(t, Values(About.Defaults), 4)
	assert.Len(t, Stats(About.Defaults), 4)
	assert.Len(t, Team(About.Defaults), 4)
	assert.Len(t, FooterGroups(Footer.Defaults), 4)
	assert.Len(t, SocialLinks(Footer.Defaults), 5)
	assert.Len(t, FeatureList(Features.Defaults), 6)
	assert.Len(t, HeroStats(Hero.Defaults), 3)
	assert.Len(t, ContactChannels(Contact.Defaults), 3)
	for _, g := range FooterGroups(Footer.Defaults) {
		assert.Len(t, g.Links, 6)
	}
}

func TestTeamInitials(t *testing.T) {
	team := Team(About.Defaults.Merge(content.Override{"team2Name": "Ada Lovelace King"}))
	got := []string{team[0].Initials, team[1].Initials, team[2].Initials, team[3].Initials}
	if diff := cmp.Diff(got, []string{"SJ", "ALK", "ER", "DK"}); diff != "" {
		t.Errorf("initials mismatch (-got +want):\n%s", diff)
	}
	assert.Equal(t, "", initials(""))
	assert.Equal(t, "É", initials("  Émile "))
}

func TestEmptyOverrideReproducesDefaults(t *testing.T) {
	for _, s := range All {
		t.Run(s.Name, func(t *testing.T) {
			base, _ := s.Render(nil, State{})
			empty, _ := s.Render(content.Override{}, State{})
			unknown, _ := s.Render(content.Override{"foo": "bar"}, State{})
			want := render(t, base)
			assert.Equal(t, want, render(t, empty))
			assert.Equal(t, want, render(t, unknown))

			doc := parse(t, want)
			doc.Find("[data-editable]").Each(func(_ int, sel *goquery.Selection) {
				key, _ := sel.Attr("data-editable")
				assert.Equal(t, s.Defaults.Get(key), sel.Text(), "key %s", key)
			})
		})
	}
}

func TestTagsResolveToKeys(t *testing.T) {
	for _, s := range All {
		t.Run(s.Name, func(t *testing.T) {
			c, m := s.Render(nil, State{})
			require.NoError(t, m.Validate(s.Name, s.Defaults))

			doc := parse(t, render(t, c))
			seen := make(map[string]bool)
			for _, tag := range tags(doc.Selection) {
				assert.False(t, seen[tag], "duplicate tag %s", tag)
				seen[tag] = true
				key := tag[strings.Index(tag, "=")+1:]
				assert.True(t, s.Defaults.Has(key), "tag %s has no key", tag)
			}
			assert.Len(t, seen, len(m.Section(s.Name)), "manifest and markup disagree")
		})
	}
}

func TestManifestCarriesOverrides(t *testing.T) {
	_, m := Pricing.Render(content.Override{"plan2Price": "$999"}, State{})
	o := m.Override(Pricing.Name)
	assert.Equal(t, "$999", o["plan2Price"])
	assert.Equal(t, "$299", o["plan1Price"])
	assert.NotContains(t, o, "plan3Period")
}

func TestPricingMarkup(t *testing.T) {
	c, _ := Pricing.Render(content.Override{"plan2Price": "$999"}, State{})
	doc := parse(t, render(t, c))

	cards := doc.Find("[data-plan]")
	require.Equal(t, 3, cards.Length())
	var prices []string
	cards.Each(func(_ int, s *goquery.Selection) {
		prices = append(prices, s.Find(`[data-editable$="Price"]`).Text())
	})
	assert.Equal(t, []string{"$299", "$999", "Custom"}, prices)

	assert.Equal(t, 1, doc.Find(`[data-editable="plan2Trial"]`).Length())
	assert.Equal(t, 0, doc.Find(`[data-editable="plan3Period"]`).Length())
	assert.Equal(t, "/", doc.Find(`[data-editable-href="plan1CTAHref"]`).AttrOr("href", ""))
}

func TestTrialBoundToSlotNotName(t *testing.T) {
	c, m := Pricing.Render(content.Override{"plan1Name": "Professional"}, State{})
	require.NoError(t, m.Validate(Pricing.Name, Pricing.Defaults))
	doc := parse(t, render(t, c))
	assert.Equal(t, 1, doc.Find(`[data-editable="plan2Trial"]`).Length())
}

func TestBillingToggleLeavesPrices(t *testing.T) {
	monthly, _ := Pricing.Render(nil, State{Billing: BillingMonthly})
	annual, _ := Pricing.Render(nil, State{Billing: BillingAnnual})
	mDoc := parse(t, render(t, monthly))
	aDoc := parse(t, render(t, annual))

	mCards, err := goquery.OuterHtml(mDoc.Find("[data-plan]").Parent())
	require.NoError(t, err)
	aCards, err := goquery.OuterHtml(aDoc.Find("[data-plan]").Parent())
	require.NoError(t, err)
	assert.Equal(t, mCards, aCards, "plan cards must not depend on the billing cycle")

	pressed := func(doc *goquery.Document, cycle BillingCycle) string {
		return doc.Find(`[data-billing="` + string(cycle) + `"]`).AttrOr("aria-pressed", "")
	}
	assert.Equal(t, "true", pressed(mDoc, BillingMonthly))
	assert.Equal(t, "false", pressed(mDoc, BillingAnnual))
	assert.Equal(t, "false", pressed(aDoc, BillingMonthly))
	assert.Equal(t, "true", pressed(aDoc, BillingAnnual))
}

func TestBillingToggleFragment(t *testing.T) {
	c, m := BillingToggle(content.Override{"billingAnnual": "Yearly"}, State{Billing: BillingAnnual})
	doc := parse(t, render(t, c))
	toggle := doc.Find("#" + BillingToggleID)
	require.Equal(t, 1, toggle.Length())
	assert.Equal(t, "Yearly", toggle.Find(`[data-editable="billingAnnual"]`).Text())
	assert.Equal(t, "/?billing=monthly", toggle.Find(`[data-billing="monthly"]`).AttrOr("hx-get", ""))
	assert.Len(t, m.Fields, 3)
	require.NoError(t, m.Validate(Pricing.Name, Pricing.Defaults))
}

func TestBillingToggleRequestsBillingURL(t *testing.T) {
	c, _ := Pricing.Render(nil, State{BillingURL: "/landing/"})
	doc := parse(t, render(t, c))
	for _, cycle := range []BillingCycle{BillingMonthly, BillingAnnual} {
		button := doc.Find(`[data-billing="` + string(cycle) + `"]`)
		assert.Equal(t, "/landing/?billing="+string(cycle), button.AttrOr("hx-get", ""))
		assert.Equal(t, "#"+BillingToggleID, button.AttrOr("hx-target", ""))
	}
}

func TestMarkup(t *testing.T) {
	c, m := Fragment(Hero, nil, State{})
	require.NotEmpty(t, m.Fields)
	assert.Equal(t, render(t, c), render(t, Markup(Fragment(Hero, nil, State{}))))
}

func TestParseBillingCycle(t *testing.T) {
	assert.Equal(t, BillingAnnual, ParseBillingCycle("annual"))
	assert.Equal(t, BillingAnnual, ParseBillingCycle(" ANNUAL "))
	assert.Equal(t, BillingMonthly, ParseBillingCycle("monthly"))
	assert.Equal(t, BillingMonthly, ParseBillingCycle(""))
	assert.Equal(t, BillingMonthly, ParseBillingCycle("weekly"))
}

func TestContactForm(t *testing.T) {
	c, m := ContactForm(nil, Enquiry{Name: "Jane", Email: "jane@acme.test"}, FormSent)
	doc := parse(t, render(t, c))
	form := doc.Find("#" + ContactFormID)
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/contact", form.AttrOr("hx-post", ""))
	assert.Equal(t, "Jane", form.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, Contact.Defaults.Get("formSuccess"), form.Find(`[data-editable="formSuccess"]`).Text())
	assert.Equal(t, 0, form.Find(`[data-editable="formError"]`).Length())
	require.NoError(t, m.Validate(Contact.Name, Contact.Defaults))
}

func TestPage(t *testing.T) {
	ov := OverrideMap{
		"pricing": {"plan2Price": "$999"},
		"footer":  {"logoText": "Maestro"},
	}
	c, m := Page(Meta{Title: "Warehouse Maestro", Assets: "/static"}, ov, State{})
	html := render(t, c)
	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	doc := parse(t, html)

	var ids []string
	doc.Find("main > div[id]").Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("id", ""))
	})
	assert.Equal(t, []string{"hero", "features", "pricing", "contact", "about"}, ids)
	assert.Equal(t, 1, doc.Find("body > #footer").Length())

	assert.Equal(t, "$999", doc.Find(`#pricing [data-editable="plan2Price"]`).Text())
	assert.Equal(t, "Maestro", doc.Find(`#footer [data-editable="logoText"]`).Text())
	assert.Equal(t, "Warehouse Maestro", doc.Find("title").Text())

	for _, s := range All {
		assert.NoError(t, m.Validate(s.Name, s.Defaults), s.Name)
		assert.NotEmpty(t, m.Section(s.Name), s.Name)
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("pricing")
	require.True(t, ok)
	assert.Same(t, Pricing, s)
	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestContactSectionEchoesSubmission(t *testing.T) {
	c, _ := Contact.Render(nil, State{Enquiry: Enquiry{Email: "bad"}, Form: FormInvalid})
	doc := parse(t, render(t, c))
	assert.Equal(t, "bad", doc.Find(`#contact-form input[name="email"]`).AttrOr("value", ""))
	assert.Equal(t, 1, doc.Find(`[data-editable="formError"]`).Length())
}

func TestEnquiryValid(t *testing.T) {
	assert.True(t, Enquiry{Name: "Jane", Email: "jane@acme.test"}.Valid())
	assert.False(t, Enquiry{Name: " ", Email: "jane@acme.test"}.Valid())
	assert.False(t, Enquiry{Name: "Jane", Email: "jane"}.Valid())
}

func TestTables(t *testing.T) {
	tables := Tables()
	assert.Len(t, tables, len(All))
	assert.Equal(t, "$299", tables["pricing"].Get("plan1Price"))
}
