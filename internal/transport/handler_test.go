package transport

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-service/internal/clock"
	"catalog-service/internal/middleware"
	"catalog-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testCatalog struct {
	router     chi.Router
	clock      *clock.MockClock
	products   *memoryProductRepository
	brands     *memoryBrandRepository
	categories *memoryCategoryRepository
}

func newTestCatalog(guards Guards) *testCatalog {
	c := &testCatalog{
		router:     chi.NewRouter(),
		clock:      clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
		products:   newMemoryProductRepository(),
		brands:     newMemoryBrandRepository(),
		categories: newMemoryCategoryRepository(),
	}
	logger := zap.NewNop()

	NewProductHandler(service.NewProductService(c.products, c.clock, logger), logger).RegisterRoutes(c.router, guards)
	NewBrandHandler(service.NewBrandService(c.brands, c.clock, logger), logger).RegisterRoutes(c.router, guards)
	NewCategoryHandler(service.NewCategoryService(c.categories, c.clock, logger), logger).RegisterRoutes(c.router, guards)
	return c
}

func (c *testCatalog) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorDetail {
	t.Helper()
	return decodeBody[middleware.ErrorResponse](t, w).Error
}
