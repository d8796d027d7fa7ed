package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/view"
	"github.com/kizzez/cafeadmin/internal/webserver"
)

func registerActivityRoutes() {
	webserver.ApiGET("/activity", listActivity)
	webserver.ApiDELETE("/activity", clearActivity)
}

func listActivity(c echo.Context) error {
	entries, err := getApp(c).Activity().List()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view.ActivityRows(entries))
}

func clearActivity(c echo.Context) error {
	if err := getApp(c).Activity().Clear(); err != nil {
		return failErr(c, err)
	}
	return ok(c, nil)
}
