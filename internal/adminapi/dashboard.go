package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/webserver"
)

// salesSeries is the payload consumed by the chart widget
type salesSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func registerDashboardRoutes() {
	webserver.ApiGET("/dashboard", dashboardStats)
	webserver.ApiGET("/dashboard/sales", dashboardSales)
}

func dashboardStats(c echo.Context) error {
	stats, err := getApp(c).Dashboard().Snapshot()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, stats)
}

func dashboardSales(c echo.Context) error {
	labels, values, err := getApp(c).Dashboard().SalesSeries()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, salesSeries{Labels: labels, Values: values})
}
