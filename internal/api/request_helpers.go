package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// getPathParam extracts a URL path parameter. chi matches against the raw
// path when the request carries escaped characters, so the value is unescaped
// in that case.
func getPathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
