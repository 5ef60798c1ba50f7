package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithlab/storefront-client/internal/domain"
	"github.com/zenithlab/storefront-client/internal/models"
	"github.com/zenithlab/storefront-client/internal/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return &Session{Store: st}
}

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "testuser",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSession_TokenLifecycle(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	assert.False(t, s.IsLoggedIn())
	assert.Equal(t, "", s.Token())

	require.NoError(t, s.SetToken("abc"))
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "abc", s.Token())

	require.NoError(t, s.Logout())
	assert.False(t, s.IsLoggedIn())
}

func TestSession_UserRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	_, ok := s.User()
	assert.False(t, ok)
	assert.Equal(t, domain.Account(""), s.AccountType())

	require.NoError(t, s.SetUser(models.User{
		ID:          7,
		Username:    "gov-buyer",
		Role:        "USER",
		AccountType: domain.AccountGovernment,
	}))

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "gov-buyer", u.Username)
	assert.Equal(t, domain.AccountGovernment, s.AccountType())
	assert.False(t, s.IsAdmin())
}

func TestSession_UnrecognizedAccountTypeKeptVerbatim(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	require.NoError(t, s.SetUser(models.User{ID: 1, Username: "odd", AccountType: "TRIAL"}))

	acct := s.AccountType()
	assert.Equal(t, domain.Account("TRIAL"), acct)
	assert.False(t, domain.CanPurchase(acct, domain.RequirementBusiness))
	assert.True(t, domain.CanPurchase(acct, domain.RequirementNone))
}

func TestSession_IsAdmin(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	require.NoError(t, s.SetUser(models.User{ID: 1, Username: "root", Role: "ADMIN"}))
	assert.True(t, s.IsAdmin())
}

func TestSession_LogoutKeepsCompareList(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	require.NoError(t, s.SetToken("abc"))
	require.NoError(t, s.SetUser(models.User{ID: 1, Username: "u"}))
	require.NoError(t, s.SaveCompareList(domain.ComparisonSet{1, 2}))

	require.NoError(t, s.Logout())

	assert.False(t, s.IsLoggedIn())
	_, ok := s.User()
	assert.False(t, ok)
	assert.Equal(t, domain.ComparisonSet{1, 2}, s.CompareList())
}

func TestSession_Claims(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	_, err := s.Claims()
	assert.Error(t, err)

	require.NoError(t, s.SetToken(signToken(t, time.Now().Add(time.Hour))))

	claims, err := s.Claims()
	require.NoError(t, err)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "testuser", sub)
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	assert.True(t, s.Expired(), "no token counts as expired")

	require.NoError(t, s.SetToken(signToken(t, time.Now().Add(time.Hour))))
	assert.False(t, s.Expired())

	require.NoError(t, s.SetToken(signToken(t, time.Now().Add(-time.Hour))))
	assert.True(t, s.Expired())

	// opaque tokens are not judged locally; the server decides
	require.NoError(t, s.SetToken("opaque-session-token"))
	assert.False(t, s.Expired())
}

func TestSession_ExpiredTokenIsNotLoggedIn(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.NoError(t, s.SetToken(signToken(t, time.Now().Add(time.Hour))))
	assert.True(t, s.IsLoggedIn())

	require.NoError(t, s.SetToken(signToken(t, time.Now().Add(-time.Hour))))
	assert.False(t, s.IsLoggedIn(), "an expired token must not pass for a live session")
}

func TestSession_CompareListRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	assert.Nil(t, s.CompareList())

	require.NoError(t, s.SaveCompareList(domain.ComparisonSet{3, 1}))
	assert.Equal(t, domain.ComparisonSet{3, 1}, s.CompareList())

	require.NoError(t, s.SaveCompareList(nil))
	assert.Empty(t, s.CompareList())
}
