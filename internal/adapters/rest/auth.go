package rest

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"servdash/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "refreshToken"
	roleAdmin     = "admin"
)

// Caller is the authenticated origin of a request.
type Caller struct {
	UserID string
	Role   string
	Bot    bool
}

// Admin reports whether the caller may manage events.
func (c Caller) Admin() bool {
	return c.Bot || c.Role == roleAdmin
}

type sessionClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator accepts the bot's static API key or an HS256 dashboard
// session token.
type Authenticator struct {
	botKey []byte
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(botAPIKey, sessionSecret string) *Authenticator {
	return &Authenticator{
		botKey: []byte(botAPIKey),
		secret: []byte(sessionSecret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Authenticate resolves the caller of r. A request without credentials fails
// with domain.ErrUnauthorized, a bad token with domain.ErrForbidden.
func (a *Authenticator) Authenticate(r *http.Request) (Caller, error) {
	token := bearerToken(r)
	if token != "" && len(a.botKey) > 0 && subtle.ConstantTimeCompare([]byte(token), a.botKey) == 1 {
		return Caller{Bot: true, Role: roleAdmin}, nil
	}
	if token == "" {
		if c, err := r.Cookie(sessionCookie); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		return Caller{}, domain.ErrUnauthorized
	}

	var claims sessionClaims
	_, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %w", domain.ErrForbidden, err)
	}
	if claims.UserID == "" {
		return Caller{}, fmt.Errorf("%w: token sans identifiant", domain.ErrForbidden)
	}
	return Caller{UserID: claims.UserID, Role: claims.Role}, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

type callerKey struct{}

// CallerFrom returns the caller stored by the auth middleware.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := s.auth.Authenticate(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	}
}

func (s *Server) admin(next http.HandlerFunc) http.HandlerFunc {
	return s.authed(func(w http.ResponseWriter, r *http.Request) {
		caller, _ := CallerFrom(r.Context())
		if !caller.Admin() {
			s.writeError(w, r, fmt.Errorf("%w: rôle admin requis", domain.ErrForbidden))
			return
		}
		next(w, r)
	})
}
