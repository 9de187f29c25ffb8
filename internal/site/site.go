// Package site declares the landing page routes.
package site

import (
	"net/http"
	"strconv"

	"github.com/go-playground/form/v4"
	"go.uber.org/zap"

	"github.com/maestrohq/landing/content"
	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/internal/pages"
	"github.com/maestrohq/landing/sections"
)

type index struct {
	home     homePage     `route:"GET /{$} Home"`
	contact  contactPage  `route:"POST /contact Contact"`
	section  sectionPage  `route:"GET /sections/{name} Section"`
	manifest manifestPage `route:"GET /manifest.json Manifest"`
}

func (index) Middlewares() []pages.MiddlewareFunc {
	return []pages.MiddlewareFunc{varyHTMX}
}

// Deps are the services the pages are built from.
type Deps struct {
	Config *config.Config
	Store  *overrides.Store
	Log    *zap.Logger
}

// Mount registers the landing pages on r.
func Mount(r pages.Router, d Deps) (*pages.PageNode, error) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	dec := form.NewDecoder()
	dec.SetTagName("form")
	p := pages.New(
		pages.WithPageConfig(pages.HTMXPageConfig),
		pages.WithErrorHandler(ErrorHandler(d.Log)),
		pages.WithMiddlewares(contentVersion(d.Store)),
	)
	return p.Mount(r, index{}, "/", d.Config.Site.Title, d.Config, d.Store, d.Log, dec)
}

// varyHTMX marks responses as depending on the htmx headers that select the
// rendered component.
func varyHTMX(next http.Handler, _ *pages.PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		w.Header().Add("Vary", "HX-Target")
		next.ServeHTTP(w, r)
	})
}

// ContentVersionHeader carries the version of the override snapshot current
// when the request arrived.
const ContentVersionHeader = "X-Content-Version"

func contentVersion(store *overrides.Store) pages.MiddlewareFunc {
	return func(next http.Handler, _ *pages.PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(ContentVersionHeader, strconv.FormatUint(store.Snapshot().Version, 10))
			next.ServeHTTP(w, r)
		})
	}
}

// view is what every page renders from: one override snapshot for the whole
// request and the UI state read from it.
type view struct {
	meta    sections.Meta
	ov      sections.OverrideMap
	version uint64
	state   sections.State
}

func newView(r *http.Request, cfg *config.Config, store *overrides.Store) (view, error) {
	home, err := pages.URLFor(r.Context(), homePage{})
	if err != nil {
		return view{}, err
	}
	snap := store.Snapshot()
	return view{
		meta:    Meta(cfg),
		ov:      sections.OverrideMap(snap.Sections),
		version: snap.Version,
		state: sections.State{
			Billing:    sections.ParseBillingCycle(r.URL.Query().Get("billing")),
			BillingURL: home,
		},
	}, nil
}

func (v view) override(s *sections.Section) content.Override {
	return v.ov.Section(s.Name)
}

// Meta returns the document metadata configured for the site.
func Meta(cfg *config.Config) sections.Meta {
	return sections.Meta{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		Assets:      cfg.Site.Assets,
		Scripts:     cfg.Site.Scripts,
	}
}
