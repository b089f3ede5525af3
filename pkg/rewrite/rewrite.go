// Package rewrite maps bare restaurant slugs ("/pizza-palace") to the
// internal welcome route without changing the URL the client sees. It is pure
// path classification; the welcome handler does the existence check.
package rewrite

import (
	"net/http"
	"path"
	"strings"
)

// Paths equal to or starting with one of these are never treated as slugs.
var reservedPrefixes = []string{
	"/api",
	"/menu",
	"/admin",
	"/login",
	"/welcome",
	"/_next",
	"/static",
	"/uploads",
	"/.well-known",
	"/favicon.ico",
	"/robots.txt",
	"/sitemap.xml",
}

var staticExtensions = map[string]bool{
	".ico": true, ".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".css": true, ".js": true, ".map": true,
	".txt": true, ".xml": true, ".json": true, ".woff": true, ".woff2": true,
	".ttf": true,
}

// WelcomeSlug classifies p. It returns the slug and true only for a
// non-reserved, non-static, single-segment path; everything else passes
// through untouched.
func WelcomeSlug(p string) (string, bool) {
	if p == "" || p == "/" {
		return "", false
	}
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(p, prefix) {
			return "", false
		}
	}
	if staticExtensions[strings.ToLower(path.Ext(p))] {
		return "", false
	}

	candidate := strings.TrimPrefix(p, "/")
	if candidate == "" || strings.Contains(candidate, "/") {
		return "", false
	}
	return candidate, true
}

// Handler wraps the router, rewriting the internal request path to
// /welcome/{slug} before routing. The client-visible URL is unchanged.
func Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slug, ok := WelcomeSlug(r.URL.Path); ok {
			r.URL.Path = "/welcome/" + slug
		}
		next.ServeHTTP(w, r)
	})
}
