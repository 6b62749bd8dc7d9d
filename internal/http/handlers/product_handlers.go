package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	mu.Lock()
	products := ldg.Products()
	mu.Unlock()

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	mu.Lock()
	product, ok := ldg.FindProduct(id)
	var resp ProductResponse
	if ok {
		resp = toProductResponse(*product)
	}
	mu.Unlock()

	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
