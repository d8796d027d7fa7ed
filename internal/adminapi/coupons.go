package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/view"
	"github.com/kizzez/cafeadmin/internal/webserver"
)

type couponPayload struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
	Expiry   string `json:"expiry"`
}

func registerCouponRoutes() {
	webserver.ApiGET("/coupons", listCoupons)
	webserver.ApiPOST("/coupons", createCoupon)
	webserver.ApiDELETE("/coupons/:code", deleteCoupon)
}

func listCoupons(c echo.Context) error {
	coupons, err := getApp(c).Coupons().List()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view.CouponRows(coupons))
}

func createCoupon(c echo.Context) error {
	var payload couponPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse coupon")
	}
	coupon, err := getApp(c).Coupons().Create(payload.Code, payload.Discount, payload.Expiry)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, coupon)
}

func deleteCoupon(c echo.Context) error {
	if err := getApp(c).Coupons().Delete(c.Param("code")); err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"code": c.Param("code")})
}
