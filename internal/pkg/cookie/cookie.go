package cookie

import (
	"net/http"
	"time"

	"client-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// The refresh token is only ever read by the auth endpoints, so its
	// cookie is scoped there instead of riding along on every request.
	refreshCookiePath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	setToken(c, cfg, AccessTokenCookieName, accessToken, "/", int(accessExpiry.Seconds()))
	setToken(c, cfg, RefreshTokenCookieName, refreshToken, refreshCookiePath, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	setToken(c, cfg, AccessTokenCookieName, "", "/", -1)
	setToken(c, cfg, RefreshTokenCookieName, "", refreshCookiePath, -1)
}

func setToken(c *gin.Context, cfg config.CookieConfig, name, value, path string, maxAge int) {
	c.SetCookie(name, value, maxAge, path, cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
