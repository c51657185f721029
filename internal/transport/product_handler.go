package transport

import (
	"net/http"

	"catalog-service/internal/domain"
	"catalog-service/internal/middleware"
	"catalog-service/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router, guards Guards) {
	r.Route("/api/products", func(r chi.Router) {
		// Public routes
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
		r.Get("/sku/{sku}", h.GetProductBySKU)
		r.Get("/name/{name}", h.GetProductByName)

		// Protected routes
		r.With(guards.Write...).Post("/", h.CreateProduct)
		r.With(guards.Write...).Put("/{id}", h.ReplaceProduct)
		r.With(guards.Write...).Patch("/{id}", h.PatchProduct)
		r.With(guards.Delete...).Delete("/{id}", h.DeleteProduct)
	})
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req.toProduct())
	if err != nil {
		respondError(w, h.logger, err, "create product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "list products")
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProductByID(r.Context(), idParam(r))
	h.respondProduct(w, product, err)
}

func (h *ProductHandler) GetProductBySKU(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProductBySKU(r.Context(), chi.URLParam(r, "sku"))
	h.respondProduct(w, product, err)
}

func (h *ProductHandler) GetProductByName(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProductByName(r.Context(), chi.URLParam(r, "name"))
	h.respondProduct(w, product, err)
}

func (h *ProductHandler) respondProduct(w http.ResponseWriter, product *domain.Product, err error) {
	if err != nil {
		respondError(w, h.logger, err, "get product")
		return
	}
	if product == nil {
		respondNotFound(w, "product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(product))
}

// ReplaceProduct overwrites every field of the product, including its feature set
func (h *ProductHandler) ReplaceProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	existing, ok := h.findExisting(w, r, "update product")
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), req.replace(existing))
	if err != nil {
		respondError(w, h.logger, err, "update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(product))
}

// PatchProduct merges the provided fields onto the stored product
func (h *ProductHandler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	var req PatchProductRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	existing, ok := h.findExisting(w, r, "update product")
	if !ok {
		return
	}

	merged := req.toPatch().Apply(*existing)

	product, err := h.productService.UpdateProduct(r.Context(), &merged)
	if err != nil {
		respondError(w, h.logger, err, "update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.findExisting(w, r, "delete product")
	if !ok {
		return
	}

	if err := h.productService.DeleteProductByID(r.Context(), existing.ID.String()); err != nil {
		respondError(w, h.logger, err, "delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findExisting loads the product named by the {id} path parameter, writing 400/404/500 itself
func (h *ProductHandler) findExisting(w http.ResponseWriter, r *http.Request, action string) (*domain.Product, bool) {
	existing, err := h.productService.GetProductByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, action)
		return nil, false
	}
	if existing == nil {
		respondNotFound(w, "product")
		return nil, false
	}
	return existing, true
}
