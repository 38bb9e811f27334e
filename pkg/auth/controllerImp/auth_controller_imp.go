package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"plot/pkg/auth/controller"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// DevLogin sets the dev identity cookie. Local use only; real deployments
// front this with a proper identity provider.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = "U_DEV_DEFAULT"
	}
	c.SetCookie(&http.Cookie{Name: "PLOT_UID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
