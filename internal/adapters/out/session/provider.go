// Package session implements the courier session: who is logged in and the
// short-lived bearer tokens sent with every transition call.
package session

import (
	"context"
	"sync"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of one minted token. Tokens are minted per
// call and never cached, so the lifetime only needs to cover a single request.
const DefaultTokenTTL = 5 * time.Minute

const tokenIssuer = "logistics-courier-client"

// Provider implements ports.SessionProvider with HS256-signed tokens minted
// fresh on every FreshIDToken call. Safe for concurrent use.
type Provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu     sync.RWMutex
	userID string
}

// ProviderOption customizes a Provider.
type ProviderOption func(*Provider)

// WithTokenTTL overrides the minted token lifetime.
func WithTokenTTL(ttl time.Duration) ProviderOption {
	return func(p *Provider) {
		p.ttl = ttl
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) ProviderOption {
	return func(p *Provider) {
		p.now = now
	}
}

// NewProvider creates a session provider signing tokens with the given secret.
func NewProvider(secret []byte, opts ...ProviderOption) *Provider {
	p := &Provider{
		secret: secret,
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

var _ ports.SessionProvider = (*Provider)(nil)

// Login activates a session for the courier.
func (p *Provider) Login(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.userID = userID
	return nil
}

// Logout ends the active session.
func (p *Provider) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userID = ""
}

// CurrentUserID returns the courier's user ID, empty when logged out.
func (p *Provider) CurrentUserID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.userID
}

// FreshIDToken mints a new signed token for the active session. Fails with
// an AuthenticationRequiredError when no courier is logged in.
func (p *Provider) FreshIDToken(_ context.Context) (string, error) {
	userID := p.CurrentUserID()
	if userID == "" {
		return "", errs.NewAuthenticationRequiredError("fresh token")
	}

	now := p.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}
