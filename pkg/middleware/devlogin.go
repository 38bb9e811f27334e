package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DevLogin resolves a user id from the PLOT_UID cookie or a ?uid= query
// param, falling back to the shared dev identity. Every request gets a
// uid in context; handlers never deal with anonymous callers.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie("PLOT_UID"); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "PLOT_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: "PLOT_UID", Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
