package adminapi

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/export"
	"github.com/kizzez/cafeadmin/internal/repository"
	"github.com/kizzez/cafeadmin/internal/view"
	"github.com/kizzez/cafeadmin/internal/webserver"
)

// productPayload carries create/update form input; nil fields keep the
// stored value on update
type productPayload struct {
	Name     *string  `json:"name"`
	Desc     *string  `json:"desc"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
	Image    *string  `json:"image"`
	Status   *string  `json:"status"`
}

func (p productPayload) fields() repository.ProductFields {
	return repository.ProductFields{
		Name:     p.Name,
		Desc:     p.Desc,
		Price:    p.Price,
		Stock:    p.Stock,
		Category: p.Category,
		Image:    p.Image,
		Status:   p.Status,
	}
}

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func productFilter(c echo.Context) repository.ProductFilter {
	return repository.ProductFilter{
		Text:     c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}
}

// listProducts returns display-ready rows for the filtered catalog
func listProducts(c echo.Context) error {
	products, err := getApp(c).Products().List(productFilter(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, view.ProductRows(products, repository.ProductFilter{}))
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	p, err := getApp(c).Products().Get(id)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse product")
	}
	p, err := getApp(c).Products().Create(payload.fields())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse product")
	}
	p, err := getApp(c).Products().Update(id, payload.fields())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}
	if err := getApp(c).Products().Delete(id); err != nil {
		return failErr(c, err)
	}
	return ok(c, map[string]interface{}{"id": id})
}

// exportProducts streams the catalog as a CSV download
func exportProducts(c echo.Context) error {
	app := getApp(c)
	products, err := app.Products().List(repository.ProductFilter{})
	if err != nil {
		return failErr(c, err)
	}

	var buf bytes.Buffer
	if err := export.Products(&buf, products); err != nil {
		return failErr(c, err)
	}
	app.Activity().Record("Exportó productos a CSV")

	filename := export.Filename("cafe_products", time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
