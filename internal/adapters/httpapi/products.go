package httpapi

import (
	"net/http"
	"strconv"

	"krushi/internal/ports/input"
	"krushi/internal/ports/output"
)

// GET /api/products/get-products?category=&featured=true&search=
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	featured, _ := strconv.ParseBool(q.Get("featured"))
	products, err := h.products.ListProducts(r.Context(), output.ProductFilter{
		Category:     q.Get("category"),
		FeaturedOnly: featured,
		Search:       q.Get("search"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list(w, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var cmd input.CreateProduct
	if err := decode(w, r, &cmd); err != nil {
		h.badRequest(w, r, err)
		return
	}
	product, err := h.products.CreateProduct(r.Context(), LanguageFromContext(r.Context()), cmd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, h.msg(r.Context(), "product_created"), product)
}
