package transport

import (
	"net/http"

	"catalog-service/internal/domain"
	"catalog-service/internal/middleware"
	"catalog-service/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	categoryService service.CategoryService
	logger          *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router, guards Guards) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/search", h.SearchCategory)
		r.Get("/{id}", h.GetCategory)

		r.With(guards.Write...).Post("/", h.CreateCategory)
		r.With(guards.Write...).Put("/{id}", h.UpdateCategory)
		r.With(guards.Delete...).Delete("/{id}", h.DeleteCategory)
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, h.logger, err, "create category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAllCategories(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "list categories")
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}

	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryService.GetCategoryByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, "get category")
		return
	}
	if category == nil {
		respondNotFound(w, "category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) SearchCategory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "query parameter name is required")
		return
	}

	category, err := h.categoryService.GetCategoryByName(r.Context(), name)
	if err != nil {
		respondError(w, h.logger, err, "get category")
		return
	}
	if category == nil {
		respondNotFound(w, "category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req PatchCategoryRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	existing, err := h.categoryService.GetCategoryByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, "update category")
		return
	}
	if existing == nil {
		respondNotFound(w, "category")
		return
	}

	merged := domain.CategoryPatch{Name: req.Name, Description: req.Description}.Apply(*existing)

	category, err := h.categoryService.UpdateCategory(r.Context(), &merged)
	if err != nil {
		respondError(w, h.logger, err, "update category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	existing, err := h.categoryService.GetCategoryByID(r.Context(), idParam(r))
	if err != nil {
		respondError(w, h.logger, err, "delete category")
		return
	}
	if existing == nil {
		respondNotFound(w, "category")
		return
	}

	if err := h.categoryService.DeleteCategoryByID(r.Context(), existing.ID.String()); err != nil {
		respondError(w, h.logger, err, "delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
