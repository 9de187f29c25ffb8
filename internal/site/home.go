package site

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/sections"
)

type homePage struct{}

func (homePage) Props(r *http.Request, cfg *config.Config, store *overrides.Store) (view, error) {
	return newView(r, cfg, store)
}

func (homePage) Page(v view) templ.Component {
	return sections.Markup(sections.Page(v.meta, v.ov, v.state))
}

// BillingToggle answers the toggle's own htmx request. Prices are not
// re-rendered.
func (homePage) BillingToggle(v view) templ.Component {
	return sections.Markup(sections.BillingToggle(v.override(sections.Pricing), v.state))
}
