package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/repository"
	"github.com/kizzez/cafeadmin/internal/view"
	"github.com/kizzez/cafeadmin/internal/webserver"
)

type orderStatusPayload struct {
	Status string `json:"status"`
}

func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/:id/detail", orderDetail)
	webserver.ApiPUT("/orders/:id/status", setOrderStatus)
	webserver.ApiDELETE("/orders/:id", deleteOrder)
}

func listOrders(c echo.Context) error {
	orders, err := getApp(c).Orders().List(repository.OrderFilter{Status: c.QueryParam("status")})
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view.OrderRows(orders))
}

func orderDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	detail, err := getApp(c).Orders().Detail(id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, detail)
}

func setOrderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	var payload orderStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse status")
	}
	if err := getApp(c).Orders().SetStatus(id, payload.Status); err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"id": id, "status": payload.Status})
}

func deleteOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid order id")
	}
	if err := getApp(c).Orders().Delete(id); err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"id": id})
}
