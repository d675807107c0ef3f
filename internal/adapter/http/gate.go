package adapthttp

import (
	"context"
	"net/http"
	"strings"

	"escena/internal/token"
)

// apiPrefix bounds everything the gate may protect; paths outside it are
// always public (static site assets).
const apiPrefix = "/api/"

type contextKey string

const identityContextKey contextKey = "identity"

func withIdentity(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, identityContextKey, claims)
}

// IdentityFromContext returns the verified claims the gate attached to a
// protected request, or nil on public paths.
func IdentityFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(identityContextKey).(*token.Claims)
	return claims
}

// requestVerifier is what the gate needs from the token verifier.
type requestVerifier interface {
	Verify(r *http.Request) AuthResult
}

// RequestGate classifies each inbound request as public or protected and
// delegates protected ones to the token verifier. It holds no state across
// requests.
type RequestGate struct {
	verifier       requestVerifier
	publicPrefixes []string
}

// NewRequestGate creates a gate with the given always-public path prefixes.
func NewRequestGate(verifier requestVerifier, publicPrefixes []string) *RequestGate {
	return &RequestGate{verifier: verifier, publicPrefixes: publicPrefixes}
}

// Public reports whether a path bypasses verification.
func (g *RequestGate) Public(path string) bool {
	if !strings.HasPrefix(path, apiPrefix) {
		return true
	}
	for _, p := range g.publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Middleware gates a handler chain. Protected requests that fail
// verification are answered before any downstream handler runs.
func (g *RequestGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.Public(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		res := g.verifier.Verify(r)
		if !res.Success {
			writeError(w, res.Status, res.Message)
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), res.Identity)))
	})
}
