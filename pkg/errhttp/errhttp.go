// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/product-catalog/pkg/httpx"
	catalogdomain "github.com/ghuser/product-catalog/services/catalog/domain"
	inventorydomain "github.com/ghuser/product-catalog/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error envelope.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, inventorydomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, inventorydomain.ErrInvalidMutationType),
		errors.Is(err, inventorydomain.ErrInvalidQuantity),
		errors.Is(err, catalogdomain.ErrInvalidProduct),
		errors.Is(err, catalogdomain.ErrInvalidCategory):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
