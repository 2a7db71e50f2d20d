package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// withRequestMeta records the caller's IP and user agent for the activity
// log. It expects middleware.RealIP to have run first.
func withRequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}

		ctx := utils.WithRequestMeta(r.Context(), utils.RequestMeta{
			IPAddress: ip,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
