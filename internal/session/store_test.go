package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"login_web/internal/models"
)

func newRequest(t *testing.T, cookies []*http.Cookie) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestCurrentAnonymous(t *testing.T) {
	store := NewStore("test-secret")

	username, ok := store.Current(newRequest(t, nil))
	assert.False(t, ok)
	assert.Empty(t, username)
}

func TestLoginThenCurrent(t *testing.T) {
	store := NewStore("test-secret")
	user := &models.User{Username: "admin"}

	rr := httptest.NewRecorder()
	err := store.Login(rr, newRequest(t, nil), user)
	require.NoError(t, err)

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	username, ok := store.Current(newRequest(t, cookies))
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLogoutClearsSession(t *testing.T) {
	store := NewStore("test-secret")
	user := &models.User{Username: "admin"}

	rr := httptest.NewRecorder()
	require.NoError(t, store.Login(rr, newRequest(t, nil), user))
	loginCookies := rr.Result().Cookies()

	rr = httptest.NewRecorder()
	require.NoError(t, store.Logout(rr, newRequest(t, loginCookies)))

	_, ok := store.Current(newRequest(t, rr.Result().Cookies()))
	assert.False(t, ok)
}

func TestLogoutWhenAnonymous(t *testing.T) {
	store := NewStore("test-secret")

	rr := httptest.NewRecorder()
	// 未登入時登出也不應該出錯
	assert.NoError(t, store.Logout(rr, newRequest(t, nil)))
}

func TestTamperedCookieRejected(t *testing.T) {
	store := NewStore("test-secret")
	user := &models.User{Username: "admin"}

	rr := httptest.NewRecorder()
	require.NoError(t, store.Login(rr, newRequest(t, nil), user))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	cookies[0].Value = "x" + cookies[0].Value

	_, ok := store.Current(newRequest(t, cookies))
	assert.False(t, ok)
}

func TestDifferentSecretRejected(t *testing.T) {
	store := NewStore("test-secret")
	other := NewStore("another-secret")
	user := &models.User{Username: "admin"}

	rr := httptest.NewRecorder()
	require.NoError(t, store.Login(rr, newRequest(t, nil), user))

	_, ok := other.Current(newRequest(t, rr.Result().Cookies()))
	assert.False(t, ok)
}
