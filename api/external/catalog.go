package external

import (
	"net/http"
)

// handleProducts is a thin passthrough to the fulfillment provider's catalog.
// Query params: productId (single product with variants) xor search (filtered
// list) xor neither (full list). Provider errors collapse to a generic 500.
func (h *Handlers) handleProducts(w http.ResponseWriter, r *http.Request) {
	product_id := r.URL.Query().Get("productId")
	search := r.URL.Query().Get("search")

	if product_id != "" && search != "" {
		writeError(w, http.StatusBadRequest, "productId and search are mutually exclusive")
		return
	}

	body, err := h.fulfillment.Products(product_id, search)
	if err != nil {
		h.logger.WithError(err).Error("Catalog passthrough failed")
		writeError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
