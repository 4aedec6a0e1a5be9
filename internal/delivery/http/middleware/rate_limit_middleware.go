package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"clinic-management/config"
	"clinic-management/pkg/metrics"
	"clinic-management/pkg/response"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Idle limiters are evicted after this long
const limiterTTL = 10 * time.Minute

// RateLimitMiddleware throttles requests per client IP with a token bucket
type RateLimitMiddleware struct {
	limit          rate.Limit
	burst          int
	limiters       *cache.Cache
	trustedProxies []netip.Prefix
}

// NewRateLimitMiddleware expects cfg.TrustedProxies to have passed
// config.ParseTrustedProxies; entries that do not parse are skipped.
func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	proxies, _ := config.ParseTrustedProxies(cfg.TrustedProxies)
	return &RateLimitMiddleware{
		limit:          rate.Limit(cfg.RequestsPerSecond),
		burst:          cfg.Burst,
		limiters:       cache.New(limiterTTL, 2*limiterTTL),
		trustedProxies: proxies,
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiterFor(m.clientIP(r)).Allow() {
			metrics.RateLimitedTotal.Inc()
			response.TooManyRequests(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	if cached, ok := m.limiters.Get(ip); ok {
		limiter := cached.(*rate.Limiter)
		m.limiters.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(m.limit, m.burst)
	// Add fails when a concurrent request created the limiter first
	if err := m.limiters.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		if cached, ok := m.limiters.Get(ip); ok {
			return cached.(*rate.Limiter)
		}
	}
	return limiter
}

// clientIP is the peer address unless the peer is a trusted proxy. Then
// X-Forwarded-For is walked from the right and the first hop not in the
// trusted set wins, so a client cannot pick its own bucket by prepending
// addresses.
func (m *RateLimitMiddleware) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if !m.trusted(peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !m.trusted(hop) {
			return hop
		}
	}
	return peer
}

func (m *RateLimitMiddleware) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range m.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
