package pages

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackielii/ctxkey"
)

var pcCtx = ctxkey.New[*parseContext]("pages.parseContext", nil)

func withPcCtx(pc *parseContext) MiddlewareFunc {
	return func(next http.Handler, _ *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pcCtx.WithValue(r.Context(), pc)))
		})
	}
}

// URLFor returns the route of the first page whose type matches page. page
// may also be a func(*PageNode) bool selecting the node. Path parameters are
// filled from args in order, or from name/value pairs when the first arg
// names a parameter.
//
//	URLFor(ctx, sectionPage{}, "pricing") // "/sections/pricing"
func URLFor(ctx context.Context, page any, args ...any) (string, error) {
	pc := pcCtx.Value(ctx)
	if pc == nil {
		return "", errors.New("urlfor: page tree not found in context")
	}
	pattern, err := pc.urlFor(page)
	if err != nil {
		return "", err
	}
	path, err := formatPath(pattern, args...)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}
	return strings.Replace(path, "{$}", "", 1), nil
}

func formatPath(pattern string, args ...any) (string, error) {
	segments, err := parseSegments(pattern)
	if err != nil {
		return "", err
	}
	var params []int
	for i, s := range segments {
		if s.param {
			params = append(params, i)
		}
	}
	named := make(map[string]any)
	if len(args) >= 2 && len(args)%2 == 0 {
		if key, ok := args[0].(string); ok && hasParam(segments, key) {
			for i := 0; i < len(args); i += 2 {
				key, ok := args[i].(string)
				if !ok {
					return "", fmt.Errorf("pattern %s: argument %d is not a parameter name", pattern, i)
				}
				named[key] = args[i+1]
			}
		}
	}
	if len(named) == 0 && len(args) != len(params) {
		return "", fmt.Errorf("pattern %s: expected %d arguments, got %d", pattern, len(params), len(args))
	}
	var sb strings.Builder
	n := 0
	for _, s := range segments {
		switch {
		case !s.param:
			sb.WriteString(s.name)
		case len(named) > 0:
			v, ok := named[s.name]
			if !ok {
				return "", fmt.Errorf("pattern %s: argument %s not provided", pattern, s.name)
			}
			fmt.Fprint(&sb, v)
		default:
			fmt.Fprint(&sb, args[n])
			n++
		}
	}
	return sb.String(), nil
}

func hasParam(segments []segment, name string) bool {
	for _, s := range segments {
		if s.param && s.name == name {
			return true
		}
	}
	return false
}

type segment struct {
	name  string
	param bool
}

// parseSegments splits a ServeMux pattern into literal and parameter
// segments. "{$}" is kept as a literal.
func parseSegments(pattern string) ([]segment, error) {
	var segments []segment
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:]
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := rest[:end]
		rest = rest[end+1:]
		if name == "$" {
			segments = append(segments, segment{name: "{$}"})
			continue
		}
		segments = append(segments, segment{name: strings.TrimSuffix(name, "..."), param: true})
	}
	return segments, nil
}
