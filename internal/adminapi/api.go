// Package adminapi binds the repositories and view projections to the
// admin HTTP surface.
package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/dashboard"
	"github.com/kizzez/cafeadmin/internal/repository"
)

// AppContext is what the handlers need from the application
type AppContext interface {
	Products() *repository.ProductRepository
	Orders() *repository.OrderRepository
	Coupons() *repository.CouponRepository
	Activity() *activity.Recorder
	Dashboard() *dashboard.Aggregator
}

const appContextKey = "cafeadmin_app"

// InjectApp makes the application context available to every handler
func InjectApp(app AppContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, app)
			return next(c)
		}
	}
}

func getApp(c echo.Context) AppContext {
	return c.Get(appContextKey).(AppContext)
}

// RegisterRoutes registers every admin API endpoint
func RegisterRoutes() {
	registerProductRoutes()
	registerOrderRoutes()
	registerCouponRoutes()
	registerActivityRoutes()
	registerDashboardRoutes()
}
