package pages

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// HTMXPageConfig selects the component method from the HX-Target header of
// htmx requests:
//   - HX-Target: "billing-toggle" -> BillingToggle()
//   - HX-Target: "contact-form" -> ContactForm()
//   - no HX-Target, or a plain request -> Page()
//
// Use it with WithPageConfig to enable partial rendering on every page.
func HTMXPageConfig(r *http.Request) (string, error) {
	if htmx.IsHTMX(r) {
		if target, ok := htmx.GetTarget(r); ok && target != "" {
			return mixedCase(target), nil
		}
	}
	return "Page", nil
}

// mixedCase turns a hyphenated element id into a method name.
func mixedCase(s string) string {
	if s == "" || strings.Contains(s, " ") {
		return ""
	}
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}
