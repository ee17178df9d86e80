// Package guard decides whether the client may navigate to a page.
package guard

//go:generate mockgen -source=guard.go -destination=../mock/guard_mock.go -package=mock

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// Authenticator reports whether the session holds a signed-in user.
type Authenticator interface {
	CheckAuth(ctx context.Context) bool
}

// Decision is the result of [Guard.Check]. RedirectTo is set only when
// Allowed is false.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard protects every page except the landing path.
type Guard struct {
	auth        Authenticator
	landingPath string
	logger      *logger.Logger
}

// New constructs a Guard that redirects unauthenticated navigation to
// landingPath.
func New(auth Authenticator, landingPath string, log *logger.Logger) *Guard {
	return &Guard{auth: auth, landingPath: landingPath, logger: log}
}

// LandingPath returns the public path.
func (g *Guard) LandingPath() string {
	return g.landingPath
}

// Check decides on a navigation to path.
//
// The landing path is always allowed without a session check. During a
// pre-render pass there are no client caches, so every path is allowed.
// Otherwise the session is checked and a negative answer, a panic or a
// missing authenticator redirect to the landing path.
func (g *Guard) Check(ctx context.Context, path string) (decision Decision) {
	if path == g.landingPath {
		return g.allow(path, "landing path")
	}
	if !IsClient(ctx) {
		return g.allow(path, "pre-render")
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Err(fmt.Errorf("panic: %v", r)).Str("func", "*Guard.Check").Str("path", path).Msg("session check failed")
			decision = g.deny(path)
		}
	}()

	if g.auth == nil {
		g.logger.Error().Str("func", "*Guard.Check").Str("path", path).Msg("no authenticator configured")
		return g.deny(path)
	}

	if !g.auth.CheckAuth(ctx) {
		return g.deny(path)
	}
	return g.allow(path, "authenticated")
}

func (g *Guard) allow(path, reason string) Decision {
	g.logger.Debug().Str("func", "*Guard.Check").Str("path", path).Str("reason", reason).Msg("navigation allowed")
	return Decision{Allowed: true}
}

func (g *Guard) deny(path string) Decision {
	g.logger.Info().Str("func", "*Guard.Check").Str("path", path).Str("redirect", g.landingPath).Msg("navigation denied")
	return Decision{RedirectTo: g.landingPath}
}
