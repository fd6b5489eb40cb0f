package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/angelmondragon/skb-upsell-backend/api/responses"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
	"github.com/angelmondragon/skb-upsell-backend/pkg/security"
)

const passcodeHeader = "X-Passcode"

type attemptLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// PasscodePolicy bounds how many passcode checks one client IP may run per
// window. Checks answered from the accepted-passcode cache are not counted.
type PasscodePolicy struct {
	window  time.Duration
	ipLimit int
}

func NewPasscodePolicy(window time.Duration, ipLimit int) PasscodePolicy {
	return PasscodePolicy{window: window, ipLimit: ipLimit}
}

func (p PasscodePolicy) enabled() bool {
	return p.window > 0 && p.ipLimit > 0
}

func (p PasscodePolicy) scope(ip string) string {
	return fmt.Sprintf("passcode:ip:%s", ip)
}

// passcodeGate verifies against one argon2id hash and remembers the digests of
// passcodes that matched so only unknown values pay for argon2.
type passcodeGate struct {
	hash     string
	mu       sync.RWMutex
	accepted map[string]struct{}
}

func (g *passcodeGate) cached(digest string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.accepted[digest]
	return ok
}

func (g *passcodeGate) remember(digest string) {
	g.mu.Lock()
	g.accepted[digest] = struct{}{}
	g.mu.Unlock()
}

// Passcode rejects requests whose X-Passcode header does not match hash.
func Passcode(hash string, policy PasscodePolicy, limiter attemptLimiter, logg *logger.Logger) func(http.Handler) http.Handler {
	gate := &passcodeGate{hash: hash, accepted: map[string]struct{}{}}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			provided := strings.TrimSpace(r.Header.Get(passcodeHeader))
			if provided == "" {
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "passcode required"))
				return
			}

			digest := digestOf(provided)
			if gate.cached(digest) {
				next.ServeHTTP(w, r)
				return
			}

			if policy.enabled() && limiter != nil {
				ip := clientIP(r)
				allowed, count, err := limiter.FixedWindowAllow(ctx, policy.scope(ip), int64(policy.ipLimit), policy.window)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rate limiting"))
					return
				}
				if !allowed {
					if logg != nil {
						logg.Warn(logg.WithFields(ctx, map[string]any{
							"ip":             ip,
							"attempts":       count,
							"limit":          policy.ipLimit,
							"window_seconds": int(policy.window.Seconds()),
						}), "passcode.rate_limit.blocked")
					}
					responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many passcode attempts"))
					return
				}
			}

			ok, err := security.VerifyPasscode(provided, gate.hash)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify passcode"))
				return
			}
			if !ok {
				if logg != nil {
					logg.Warn(ctx, "passcode.rejected")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid passcode"))
				return
			}

			gate.remember(digest)
			next.ServeHTTP(w, r)
		})
	}
}

func digestOf(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
