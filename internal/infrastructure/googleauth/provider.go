package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrAuthFailed covers every failure of the code exchange: invalid code,
// provider error, network failure, or timeout. Callers treat all of them the
// same way (no session, redirect with an error indicator).
var ErrAuthFailed = errors.New("authentication failed")

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ExternalIdentity is the verified profile triple resolved from an
// authorization code.
type ExternalIdentity struct {
	SubjectID string
	Email     string
	Name      string
	Picture   string
}

// Provider exchanges an authorization code for a verified external identity.
type Provider interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*ExternalIdentity, error)
}

// GoogleProvider implements Provider against Google's OAuth 2.0 endpoints.
// Stateless per request; the bounded timeout covers both the token exchange
// and the userinfo fetch.
type GoogleProvider struct {
	cfg         *oauth2.Config
	userInfoURL string
	timeout     time.Duration
}

// Option overrides provider defaults, mainly for tests.
type Option func(*GoogleProvider)

// WithEndpoint replaces Google's OAuth endpoints.
func WithEndpoint(authURL, tokenURL string) Option {
	return func(p *GoogleProvider) {
		p.cfg.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	}
}

// WithUserInfoURL replaces the userinfo endpoint.
func WithUserInfoURL(url string) Option {
	return func(p *GoogleProvider) { p.userInfoURL = url }
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string, timeout time.Duration, opts ...Option) *GoogleProvider {
	p := &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: defaultUserInfoURL,
		timeout:     timeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AuthCodeURL builds the consent-screen URL. prompt=select_account forces
// account re-selection on every login.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// ExchangeCode resolves the authorization code to the user's Google profile.
// No partial state is created on failure; the caller decides what to persist.
func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*ExternalIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %v", ErrAuthFailed, err)
	}

	resp, err := p.cfg.Client(ctx, token).Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: userinfo fetch: %v", ErrAuthFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo status %d", ErrAuthFailed, resp.StatusCode)
	}

	var profile struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: userinfo decode: %v", ErrAuthFailed, err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: userinfo missing subject id", ErrAuthFailed)
	}

	return &ExternalIdentity{
		SubjectID: profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		Picture:   profile.Picture,
	}, nil
}

var _ Provider = (*GoogleProvider)(nil)
