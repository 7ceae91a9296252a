package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-portal/internal/handler/http/docs"
)

const openAPIPath = "/customer.json"

// openAPISpec serves the embedded OpenAPI document consumed by the
// swagger UI mounted under /customer/docs/.
func (h *Handler) openAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(docs.OpenAPI)
}
