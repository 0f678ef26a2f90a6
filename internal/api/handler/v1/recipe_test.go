package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gik339/recipe-catalog/internal/config"
	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/service"
)

type stubCatalog struct {
	listFn   func(ctx context.Context) ([]domain.Recipe, error)
	getFn    func(ctx context.Context, id uint) (domain.Recipe, error)
	createFn func(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	updateFn func(ctx context.Context, recipe domain.Recipe) error
	deleteFn func(ctx context.Context, id uint) error

	created []domain.Recipe
	updated []domain.Recipe
	deleted []uint
	gets    []uint
}

func (s *stubCatalog) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []domain.Recipe{}, nil
}

func (s *stubCatalog) GetRecipe(ctx context.Context, id uint) (domain.Recipe, error) {
	s.gets = append(s.gets, id)
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return domain.Recipe{}, service.ErrRecipeNotFound
}

func (s *stubCatalog) CreateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	s.created = append(s.created, recipe)
	if s.createFn != nil {
		return s.createFn(ctx, recipe)
	}
	recipe.ID = 1
	return recipe, nil
}

func (s *stubCatalog) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	s.updated = append(s.updated, recipe)
	if s.updateFn != nil {
		return s.updateFn(ctx, recipe)
	}
	return nil
}

func (s *stubCatalog) DeleteRecipe(ctx context.Context, id uint) error {
	s.deleted = append(s.deleted, id)
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

// memoryRepo backs the real catalog service in tests that must observe
// what actually gets stored.
type memoryRepo struct {
	records map[uint]domain.Recipe
	nextID  uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		records: map[uint]domain.Recipe{},
		nextID:  1,
	}
}

func (m *memoryRepo) FindAll(_ context.Context) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(m.records))
	for _, r := range m.records {
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func (m *memoryRepo) FindByID(_ context.Context, id uint) (domain.Recipe, error) {
	r, ok := m.records[id]
	if !ok {
		return domain.Recipe{}, service.ErrRecipeNotFound
	}
	return r, nil
}

func (m *memoryRepo) Create(_ context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	recipe.ID = m.nextID
	m.nextID++
	m.records[recipe.ID] = recipe
	return recipe, nil
}

func (m *memoryRepo) Update(_ context.Context, recipe domain.Recipe) error {
	if _, ok := m.records[recipe.ID]; !ok {
		return service.ErrRecipeNotFound
	}
	m.records[recipe.ID] = recipe
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id uint) error {
	delete(m.records, id)
	return nil
}

func setupRouter(svc CatalogService, strict bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewRecipeHandler(&config.ValidationConfig{Strict: strict}, svc)

	router := gin.New()
	recipes := router.Group("/recipes")
	{
		recipes.GET("", handler.HandleListRecipes)
		recipes.GET("/:recipeID", handler.HandleGetRecipe)
		recipes.POST("", handler.HandleCreateRecipe)
		recipes.PUT("", handler.HandleUpdateRecipe)
		recipes.DELETE("/:recipeID", handler.HandleDeleteRecipe)
	}

	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHandleListRecipes(t *testing.T) {
	svc := &stubCatalog{
		listFn: func(_ context.Context) ([]domain.Recipe, error) {
			return []domain.Recipe{
				{ID: 2, Name: "Sushi", Price: 149, Servings: 1},
				{ID: 1, Name: "Tacos", Price: 119, Servings: 2},
			}, nil
		},
	}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodGet, "/recipes", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`[{"id":2,"name":"Sushi","price":149,"servings":1},{"id":1,"name":"Tacos","price":119,"servings":2}]`,
		recorder.Body.String())
}

func TestHandleListRecipesStorageError(t *testing.T) {
	svc := &stubCatalog{
		listFn: func(_ context.Context) ([]domain.Recipe, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodGet, "/recipes", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"message":"DB error"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}

func TestHandleGetRecipeFound(t *testing.T) {
	svc := &stubCatalog{
		getFn: func(_ context.Context, id uint) (domain.Recipe, error) {
			return domain.Recipe{ID: id, Name: "Tacos", Price: 119, Servings: 2}, nil
		},
	}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodGet, "/recipes/7", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":7,"name":"Tacos","price":119,"servings":2}`, recorder.Body.String())
}

func TestHandleGetRecipeMissingRendersNull(t *testing.T) {
	svc := &stubCatalog{}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodGet, "/recipes/99", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null", recorder.Body.String())
}

func TestHandleGetRecipeUnparsableIDRendersNull(t *testing.T) {
	svc := &stubCatalog{}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodGet, "/recipes/abc", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "null", recorder.Body.String())
	assert.Empty(t, svc.gets, "the store must not be queried for an unparsable id")
}

func TestHandleCreateRecipe(t *testing.T) {
	svc := &stubCatalog{}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodPost, "/recipes",
		`{"name":"Tacos","price":119,"servings":2}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"The recipe was created."}`, recorder.Body.String())
	require.Len(t, svc.created, 1)
	assert.Equal(t, domain.Recipe{Name: "Tacos", Price: 119, Servings: 2}, svc.created[0])
}

func TestHandleCreateRecipeCoercesGarbageNumbers(t *testing.T) {
	// Wired through the real catalog service: by default the garbage
	// price coerces to 0 and is stored as-is with a confirmation,
	// not rejected.
	repo := newMemoryRepo()
	router := setupRouter(service.NewCatalogService(repo), false)

	recorder := perform(router, http.MethodPost, "/recipes",
		`{"name":"Tacos","price":"abc","servings":"2"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"The recipe was created."}`, recorder.Body.String())
	require.Len(t, repo.records, 1)
	stored := repo.records[1]
	assert.Equal(t, 0, stored.Price)
	assert.Equal(t, 2, stored.Servings)
}

func TestHandleCreateRecipeStrictMode(t *testing.T) {
	svc := &stubCatalog{}
	router := setupRouter(svc, true)

	recorder := perform(router, http.MethodPost, "/recipes",
		`{"name":"Tacos","price":"abc","servings":2}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, svc.created, "strict mode rejects before the store is touched")
}

func TestHandleUpdateRecipeTakesIDFromBody(t *testing.T) {
	svc := &stubCatalog{}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodPut, "/recipes",
		`{"id":7,"name":"Tacos","price":119,"servings":1}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"The recipe was updated."}`, recorder.Body.String())
	require.Len(t, svc.updated, 1)
	assert.Equal(t, domain.Recipe{ID: 7, Name: "Tacos", Price: 119, Servings: 1}, svc.updated[0])
}

func TestHandleUpdateRecipeMissingStillConfirms(t *testing.T) {
	svc := &stubCatalog{
		updateFn: func(_ context.Context, _ domain.Recipe) error {
			return service.ErrRecipeNotFound
		},
	}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodPut, "/recipes",
		`{"id":42,"name":"Tacos","price":119,"servings":1}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"The recipe was updated."}`, recorder.Body.String())
}

func TestHandleDeleteRecipe(t *testing.T) {
	svc := &stubCatalog{}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodDelete, "/recipes/5", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"The recipe was deleted."}`, recorder.Body.String())
	assert.Equal(t, []uint{5}, svc.deleted)
}

func TestHandleDeleteRecipeStorageError(t *testing.T) {
	svc := &stubCatalog{
		deleteFn: func(_ context.Context, _ uint) error {
			return errors.New("disk full")
		},
	}
	router := setupRouter(svc, false)

	recorder := perform(router, http.MethodDelete, "/recipes/5", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"message":"DB error"`)
}
