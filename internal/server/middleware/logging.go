package middleware

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/sirupsen/logrus"
)

// UnmatchedRoute labels requests no route pattern matched.
const UnmatchedRoute = "unmatched"

// Observer receives one call per completed request.
type Observer interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// RequestLogger logs every request and reports it to the observer.
// The route is the ServeMux pattern that served the request, so it must wrap the mux.
func RequestLogger(logger logrus.FieldLogger, observer Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			route := r.Pattern
			if route == "" {
				route = UnmatchedRoute
			}
			if observer != nil {
				observer.ObserveRequest(r.Method, route, m.Code, m.Duration)
			}

			entry := logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"route":    route,
				"path":     r.URL.Path,
				"status":   m.Code,
				"bytes":    m.Written,
				"duration": m.Duration.String(),
				"remote":   r.RemoteAddr,
			})
			switch {
			case m.Code >= http.StatusInternalServerError:
				entry.Error("request failed")
			case m.Code >= http.StatusBadRequest:
				entry.Warn("request rejected")
			default:
				entry.Info("request completed")
			}
		})
	}
}
