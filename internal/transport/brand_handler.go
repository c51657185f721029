package transport

import (
	"net/http"

	"catalog-service/internal/domain"
	"catalog-service/internal/middleware"
	"catalog-service/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BrandHandler handles HTTP requests for brand operations
type BrandHandler struct {
	brandService service.BrandService
	logger       *zap.Logger
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService service.BrandService, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger,
	}
}

// RegisterRoutes registers all brand routes
func (h *BrandHandler) RegisterRoutes(r chi.Router, guards Guards) {
	r.Route("/api/brands", func(r chi.Router) {
		r.Get("/", h.ListBrands)
		r.Get("/search", h.SearchBrand)
		r.Get("/{id}", h.GetBrand)

		r.With(guards.Write...).Post("/", h.CreateBrand)
		r.With(guards.Write...).Put("/{id}", h.UpdateBrand)
		r.With(guards.Delete...).Delete("/{id}", h.DeleteBrand)
	})
}

func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req BrandRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	brand, err := h.brandService.CreateBrand(r.Context(), &domain.Brand{Name: req.Name})
	if err != nil {
		respondError(w, h.logger, err, "create brand")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, toBrandResponse(brand))
}

func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandService.GetAllBrands(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "list brands")
		return
	}

	response := make([]BrandResponse, 0, len(brands))
	for _, brand := range brands {
		response = append(response, toBrandResponse(brand))
	}

	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.brandService.GetBrandByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, "get brand")
		return
	}
	if brand == nil {
		respondNotFound(w, "brand")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toBrandResponse(brand))
}

// SearchBrand looks a brand up by its exact name (?name=)
func (h *BrandHandler) SearchBrand(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "query parameter name is required")
		return
	}

	brand, err := h.brandService.GetBrandByName(r.Context(), name)
	if err != nil {
		respondError(w, h.logger, err, "get brand")
		return
	}
	if brand == nil {
		respondNotFound(w, "brand")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toBrandResponse(brand))
}

// UpdateBrand merges the provided fields onto the stored brand
func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	var req PatchBrandRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	existing, err := h.brandService.GetBrandByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, "update brand")
		return
	}
	if existing == nil {
		respondNotFound(w, "brand")
		return
	}

	merged := domain.BrandPatch{Name: req.Name}.Apply(*existing)

	brand, err := h.brandService.UpdateBrand(r.Context(), &merged)
	if err != nil {
		respondError(w, h.logger, err, "update brand")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toBrandResponse(brand))
}

func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	existing, err := h.brandService.GetBrandByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, "delete brand")
		return
	}
	if existing == nil {
		respondNotFound(w, "brand")
		return
	}

	if err := h.brandService.DeleteBrandByID(r.Context(), existing.ID.String()); err != nil {
		respondError(w, h.logger, err, "delete brand")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
