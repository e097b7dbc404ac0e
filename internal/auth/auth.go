// Package auth maps requests to one of the two fixed portal identities.
// Credentials are checked against the configured pairs and a successful
// login is carried in a signed session cookie.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "grievance_session"

// SessionTTL bounds how long a login stays valid.
const SessionTTL = 72 * time.Hour

const tokenIssuer = "grievance-portal"

// Decision is the tagged outcome of an authorization check.
type Decision struct {
	Authorized bool
	Role       Role
	Name       string
}

// Service performs credential checks and session token handling.
type Service struct {
	secret []byte
	cfg    *config.Config
}

// NewService creates an auth service bound to the configured credential pairs.
func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.SessionSecret),
		cfg:    cfg,
	}
}

// Login checks a submitted credential pair. The user pair is checked first,
// so if both pairs were configured identically the user role wins. A miss is
// a normal negative result, not an error.
func (s *Service) Login(username, password string) (Role, bool) {
	if pairEqual(username, password, s.cfg.UserName, s.cfg.UserPassword) {
		return RoleUser, true
	}
	if pairEqual(username, password, s.cfg.AdminName, s.cfg.AdminPassword) {
		return RoleAdmin, true
	}
	return "", false
}

// DisplayName returns the configured display name for a role.
func (s *Service) DisplayName(role Role) string {
	if role == RoleAdmin {
		return s.cfg.AdminName
	}
	return s.cfg.UserName
}

// IssueToken creates a signed session token for the given role.
func (s *Service) IssueToken(role Role) (string, error) {
	claims := jwt.MapClaims{
		"role": string(role),
		"name": s.DisplayName(role),
		"jti":  uuid.New().String(),
		"exp":  time.Now().Add(SessionTTL).Unix(),
		"iss":  tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Check validates a session token against a required role and returns a
// tagged decision. Anything short of a valid token carrying exactly the
// required role is unauthorized.
func (s *Service) Check(tokenString string, required Role) Decision {
	if tokenString == "" {
		return Decision{}
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Decision{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Decision{}
	}

	roleClaim, _ := claims["role"].(string)
	role := Role(roleClaim)
	if !role.Valid() || role != required {
		return Decision{}
	}

	name, _ := claims["name"].(string)
	return Decision{Authorized: true, Role: role, Name: name}
}

// pairEqual compares a submitted pair against a configured pair in constant
// time. The credentials are still plaintext in configuration; this only
// avoids leaking match length through timing.
func pairEqual(name, pass, wantName, wantPass string) bool {
	nameOK := subtle.ConstantTimeCompare([]byte(name), []byte(wantName)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(wantPass)) == 1
	return nameOK && passOK
}
