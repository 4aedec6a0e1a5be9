package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"clinic-management/pkg/metrics"
	"clinic-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	HeaderXRequestID = "X-Request-ID"

	requestIDKey contextKey = "request_id"
)

// statusRecorder remembers the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

// Handle tags the request with an id, recovers panics, logs the outcome and
// feeds the HTTP metrics.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(HeaderXRequestID, requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		defer func() {
			if err := recover(); err != nil {
				m.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"stack":      string(debug.Stack()),
				}).Errorf("Request panic recovered: %v", err)
				rec.status = http.StatusInternalServerError
				response.Error(rec, http.StatusInternalServerError, "Internal server error", nil)
			}

			latency := time.Since(start)
			route := routeTemplate(r)
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(latency.Seconds())

			entry := m.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"latency":    latency.String(),
				"client_ip":  remoteHost(r.RemoteAddr),
			})
			switch {
			case rec.status >= 500:
				entry.Error("Server error")
			case rec.status >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}
		}()

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext extracts the request id set by LoggingMiddleware
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// routeTemplate keeps metric cardinality bounded by labelling with the
// matched mux pattern instead of the raw path.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
