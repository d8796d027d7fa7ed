package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/dashboard"
	"github.com/kizzez/cafeadmin/internal/repository"
	"github.com/kizzez/cafeadmin/internal/store"
)

type testApp struct {
	products   *repository.ProductRepository
	orders     *repository.OrderRepository
	coupons    *repository.CouponRepository
	recorder   *activity.Recorder
	aggregator *dashboard.Aggregator
}

func (a *testApp) Products() *repository.ProductRepository { return a.products }
func (a *testApp) Orders() *repository.OrderRepository     { return a.orders }
func (a *testApp) Coupons() *repository.CouponRepository   { return a.coupons }
func (a *testApp) Activity() *activity.Recorder            { return a.recorder }
func (a *testApp) Dashboard() *dashboard.Aggregator        { return a.aggregator }

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gw := store.NewMemGateway()
	require.NoError(t, store.EnsureInitialData(gw))
	bus := EventBus.New()
	rec := activity.NewRecorder(gw, bus)
	return &testApp{
		products:   repository.NewProductRepository(gw, rec, bus),
		orders:     repository.NewOrderRepository(gw, rec, bus),
		coupons:    repository.NewCouponRepository(gw, rec, bus),
		recorder:   rec,
		aggregator: dashboard.NewAggregator(gw),
	}
}

func invoke(t *testing.T, app *testApp, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	wrapped := InjectApp(app)(h)
	require.NoError(t, wrapped(c))
	return rec
}

func TestListProductsFiltered(t *testing.T) {
	app := newTestApp(t)

	rec := invoke(t, app, listProducts, http.MethodGet, "/admin/products?q=capu", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Café Capuchino")
	assert.NotContains(t, rec.Body.String(), "Café Latte")
}

func TestCreateProduct(t *testing.T) {
	app := newTestApp(t)

	body := `{"name":"Te Verde","desc":"Natural","price":6.5,"stock":10,"category":"bebidas-frias"}`
	rec := invoke(t, app, createProduct, http.MethodPost, "/admin/products", body, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestCreateProductValidationError(t *testing.T) {
	app := newTestApp(t)

	body := `{"name":"","price":-1}`
	rec := invoke(t, app, createProduct, http.MethodPost, "/admin/products", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProductNotFound(t *testing.T) {
	app := newTestApp(t)

	body := `{"price":10}`
	rec := invoke(t, app, updateProduct, http.MethodPut, "/admin/products/999", body, map[string]string{"id": "999"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetOrderStatus(t *testing.T) {
	app := newTestApp(t)

	rec := invoke(t, app, setOrderStatus, http.MethodPut, "/admin/orders/102/status", `{"status":"completed"}`, map[string]string{"id": "102"})
	assert.Equal(t, http.StatusOK, rec.Code)

	o, err := app.orders.Get(102)
	require.NoError(t, err)
	assert.Equal(t, "completed", o.Status)
}

func TestCreateCouponDuplicate(t *testing.T) {
	app := newTestApp(t)

	rec := invoke(t, app, createCoupon, http.MethodPost, "/admin/coupons", `{"code":"CAFE10","discount":10,"expiry":"2026-01-31"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = invoke(t, app, createCoupon, http.MethodPost, "/admin/coupons", `{"code":"cafe10","discount":20,"expiry":"2026-06-30"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportProductsCSV(t *testing.T) {
	app := newTestApp(t)

	rec := invoke(t, app, exportProducts, http.MethodGet, "/admin/products/export", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "ID,Name,Description,Category,Price,Stock,Status", lines[0])

	// the export itself is audited
	entries, err := app.recorder.List()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Exportó productos a CSV", entries[0].Text)
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)

	rec := invoke(t, app, dashboardStats, http.MethodGet, "/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_orders":3`)

	rec = invoke(t, app, dashboardSales, http.MethodGet, "/admin/dashboard/sales", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"labels"`)
}
