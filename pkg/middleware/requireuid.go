package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUID is the strict variant for non-dev deployments. When enabled
// it only accepts an identity from the X-Plot-Uid header or the PLOT_UID
// cookie and rejects anonymous requests. When disabled it passes through
// so DevLogin can run instead.
func RequireUID(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-Plot-Uid")
			if uid == "" {
				if ck, err := c.Cookie("PLOT_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing uid"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
