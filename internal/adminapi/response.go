package adminapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kizzez/cafeadmin/internal/repository"
)

type apiResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Code: 0, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, apiResponse{Code: status, Message: message})
}

// failErr maps the repository error taxonomy onto HTTP statuses:
// validation failures and absent resources are recovered user-visible
// warnings, everything else is an unrecovered fault.
func failErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, err.Error())
	default:
		return fail(c, http.StatusInternalServerError, err.Error())
	}
}
