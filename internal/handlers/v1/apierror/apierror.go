package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/service"
)

// FromService maps service sentinel errors onto HTTP errors. Anything
// unrecognized becomes a 500 with the fallback message; the cause stays in
// the server logs only.
func FromService(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return huma.NewError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "Not found")
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
