package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/models"
	"github.com/zenithlab/storefront-client/internal/store"
)

const (
	tokenKey   = "auth.token"
	userKey    = "auth.user"
	compareKey = "compare.list"
)

// Session is the login state of the storefront, persisted in the local
// store so it survives process restarts the way browser storage does.
type Session struct {
	Store *store.Store
}

func (s *Session) SetToken(token string) error {
	return s.Store.Put(tokenKey, token)
}

func (s *Session) Token() string {
	v, ok, err := s.Store.Get(tokenKey)
	if err != nil || !ok {
		return ""
	}
	return v
}

// IsLoggedIn reports whether a usable token is stored. A JWT whose exp claim
// has passed does not count; the user must re-authenticate.
func (s *Session) IsLoggedIn() bool {
	return s.Token() != "" && !s.Expired()
}

func (s *Session) SetUser(u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.Store.Put(userKey, string(data))
}

func (s *Session) User() (*models.User, bool) {
	v, ok, err := s.Store.Get(userKey)
	if err != nil || !ok {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return nil, false
	}
	return &u, true
}

// AccountType returns the stored account type verbatim. An absent or
// unrecognized value stays as-is; eligibility checks treat it as unable to
// match any restricted requirement.
func (s *Session) AccountType() domain.Account {
	u, ok := s.User()
	if !ok {
		return ""
	}
	return u.AccountType
}

func (s *Session) IsAdmin() bool {
	u, ok := s.User()
	return ok && u.Role == "ADMIN"
}

// Logout drops the token and user. The comparison list is client-only state
// and survives; the server-side cart persists untouched.
func (s *Session) Logout() error {
	if err := s.Store.Delete(tokenKey); err != nil {
		return err
	}
	return s.Store.Delete(userKey)
}

// Claims decodes the stored token without verifying its signature. The
// client never holds the signing secret; it only reads subject and expiry
// for display and login-state checks.
func (s *Session) Claims() (jwt.MapClaims, error) {
	tok := s.Token()
	if tok == "" {
		return nil, fmt.Errorf("no token stored")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the stored token carries an exp claim in the past.
// A missing token counts as expired. Tokens that do not parse as JWTs are not
// judged locally; they go to the server as-is and fail there if invalid.
func (s *Session) Expired() bool {
	if s.Token() == "" {
		return true
	}
	claims, err := s.Claims()
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (s *Session) CompareList() domain.ComparisonSet {
	v, ok, err := s.Store.Get(compareKey)
	if err != nil || !ok {
		return nil
	}
	var ids domain.ComparisonSet
	if err := json.Unmarshal([]byte(v), &ids); err != nil {
		return nil
	}
	return ids
}

func (s *Session) SaveCompareList(ids domain.ComparisonSet) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode compare list: %w", err)
	}
	return s.Store.Put(compareKey, string(data))
}
