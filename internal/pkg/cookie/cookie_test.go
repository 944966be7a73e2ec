//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"client-scheduler/internal/pkg/config"
	"client-scheduler/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookiesFrom(t *testing.T, fn func(c *gin.Context)) map[string]*http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	fn(c)

	out := make(map[string]*http.Cookie)
	for _, ck := range w.Result().Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestTokenCookies(t *testing.T) {
	cfg := config.CookieConfig{SameSite: "Lax"}

	t.Run("refresh cookie is scoped to the auth routes", func(t *testing.T) {
		cookies := cookiesFrom(t, func(c *gin.Context) {
			cookie.SetTokenCookies(c, cfg, "acc", "ref", 15*time.Minute, 24*time.Hour)
		})

		access := cookies[cookie.AccessTokenCookieName]
		require.NotNil(t, access)
		assert.Equal(t, "/", access.Path)
		assert.True(t, access.HttpOnly)

		refresh := cookies[cookie.RefreshTokenCookieName]
		require.NotNil(t, refresh)
		assert.Equal(t, "/api/auth", refresh.Path)
		assert.True(t, refresh.HttpOnly)
	})

	t.Run("clear matches the paths the cookies were set on", func(t *testing.T) {
		cookies := cookiesFrom(t, func(c *gin.Context) {
			cookie.ClearTokenCookies(c, cfg)
		})

		require.NotNil(t, cookies[cookie.AccessTokenCookieName])
		assert.Equal(t, "/", cookies[cookie.AccessTokenCookieName].Path)
		require.NotNil(t, cookies[cookie.RefreshTokenCookieName])
		assert.Equal(t, "/api/auth", cookies[cookie.RefreshTokenCookieName].Path)
	})
}
