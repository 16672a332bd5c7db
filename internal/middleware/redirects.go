package middleware

import (
	"net/http"
	"strings"

	"github.com/kalyondo/guardianre-website/internal/service"
)

// Redirects answers retired URLs with the redirect rules carried over
// from the previous site. Matching happens before routing.
func Redirects(redirects *service.RedirectService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			rule, ok := redirects.Lookup(r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			status := rule.Status
			if status < http.StatusMultipleChoices || status > http.StatusPermanentRedirect {
				status = http.StatusMovedPermanently
			}

			target := rule.To
			if r.URL.RawQuery != "" && !strings.Contains(target, "?") {
				target += "?" + r.URL.RawQuery
			}

			http.Redirect(w, r, target, status)
		})
	}
}
