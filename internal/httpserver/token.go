package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("invalid session token")

// tokenIssuer signs and verifies HS256 session tokens. The subject is the
// session ID; a token only grants access to that one session.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokenIssuer(secret []byte, ttl time.Duration) *tokenIssuer {
	return &tokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// sign creates a token for sessionID.
func (t *tokenIssuer) sign(sessionID string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// verify checks the token signature and expiry and that it was issued for sessionID.
func (t *tokenIssuer) verify(token, sessionID string) error {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return errBadToken
	}
	if claims.Subject != sessionID {
		return errBadToken
	}
	return nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
