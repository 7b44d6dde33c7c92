package http

import (
	"net/http"
	"strings"
)

// withCORS adds Access-Control headers for configured origins and
// short-circuits OPTIONS preflight requests.
//
// Because the session rides in a cookie, responses always allow credentials
// and echo the caller's origin rather than "*" (browsers reject the wildcard
// when credentials are in play). Requests from origins not in the configured
// list receive no Access-Control headers; `Vary: Origin` is set on every
// response so shared caches never replay a credentialed response across
// origins.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(h.corsOrigins))
	for _, origin := range h.corsOrigins {
		allowed[strings.ToLower(origin)] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the response differs per origin, so caches must always key on it
		w.Header().Add("Vary", "Origin")

		origin := r.Header.Get("Origin")
		if origin != "" {
			if _, ok := allowed[strings.ToLower(origin)]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
