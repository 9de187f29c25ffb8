package site

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-playground/form/v4"
	"go.uber.org/zap"

	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/sections"
)

type contactPage struct{}

func (contactPage) Props(r *http.Request, cfg *config.Config, store *overrides.Store,
	dec *form.Decoder, log *zap.Logger,
) (view, error) {
	v, err := newView(r, cfg, store)
	if err != nil {
		return v, err
	}
	if err := r.ParseForm(); err != nil {
		return v, NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	var e sections.Enquiry
	if err := dec.Decode(&e, r.PostForm); err != nil {
		return v, NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if !e.Valid() {
		log.Info("contact enquiry rejected", zap.String("email", e.Email))
		v.state.Enquiry, v.state.Form = e, sections.FormInvalid
		return v, nil
	}
	log.Info("contact enquiry",
		zap.String("name", e.Name),
		zap.String("email", e.Email),
		zap.String("company", e.Company),
		zap.Int("message_len", len(e.Message)))
	v.state.Form = sections.FormSent
	return v, nil
}

// Page serves browsers without htmx: the whole page with the form outcome.
func (contactPage) Page(v view) templ.Component {
	return sections.Markup(sections.Page(v.meta, v.ov, v.state))
}

func (contactPage) ContactForm(v view) templ.Component {
	return sections.Markup(sections.ContactForm(v.override(sections.Contact), v.state.Enquiry, v.state.Form))
}
