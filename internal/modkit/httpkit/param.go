package httpkit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Param returns a path parameter by name, empty when absent
// keeps modules from importing the router package directly
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
