package controller

import (
	"net/http"

	"golang.org/x/time/rate"
)

// WithRateLimit returns a middleware that admits at most rps requests per
// second with bursts of up to burst requests, answering 429 above that. A
// non-positive rps disables limiting.
func WithRateLimit(next http.Handler, rps float64, burst int) http.Handler {
	if rps <= 0 {
		return next
	}
	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"code":    "RATE_LIMITED",
				"message": "too many requests",
			})

			return
		}

		next.ServeHTTP(w, r)
	})
}
