package middleware

import (
	"fmt"
	"net"
	"net/http"

	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/logger"
	"github.com/itchan-dev/forum-api/shared/middleware/metrics"
	"github.com/itchan-dev/forum-api/shared/middleware/ratelimiter"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// RateLimit rejects requests whose identity has exhausted its bucket in rl.
func RateLimit(rl *ratelimiter.KeyRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				metrics.RateLimited(r)
				logger.Log.Warn("rate limit exceeded", "identity", identity, "path", r.URL.Path)
				utils.WriteFail(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr. Forwarding headers are not
// trusted because the service is exposed without a reverse proxy.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		logger.Log.Warn("unparsable client address", "remote_addr", r.RemoteAddr)
		return "", internal_errors.Invariant("cannot determine client address")
	}
	return ip, nil
}

// GetUserID identifies the caller by the authenticated user id; it must run
// after NeedAuth.
func GetUserID(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", fmt.Errorf("no authenticated user in request context")
	}
	return "user_" + user.Id, nil
}
