// Package pages routes requests to page structs declared as a tree with
// struct tags.
//
// Each field tagged with route declares a child page:
//
//	type site struct {
//		home    homePage    `route:"GET /{$} Home"`
//		contact contactPage `route:"POST /contact Contact"`
//	}
//
// The tag holds an optional method, the path and a title. A page renders by
// returning a component from a method: Page for full documents, or any other
// method selected by the page config (HTMXPageConfig maps the HX-Target
// header "billing-toggle" to BillingToggle). Props methods compute the
// component arguments. Parameters that are not supplied by the caller are
// injected by type from the values passed to Mount.
//
// Pages implementing http.Handler, or ServeHTTP returning an error, are
// mounted as handlers directly.
package pages
