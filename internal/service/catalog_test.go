package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/pricing"
	"github.com/gik339/recipe-catalog/internal/repository"
)

// fakeRecipeRepository assigns ids from a counter that never goes
// backwards, matching the store's id invariant.
type fakeRecipeRepository struct {
	records map[uint]domain.Recipe
	nextID  uint
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		records: map[uint]domain.Recipe{},
		nextID:  1,
	}
}

func (f *fakeRecipeRepository) FindAll(_ context.Context) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(f.records))
	for _, r := range f.records {
		recipes = append(recipes, r)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID > recipes[j].ID })

	return recipes, nil
}

func (f *fakeRecipeRepository) FindByID(_ context.Context, id uint) (domain.Recipe, error) {
	r, ok := f.records[id]
	if !ok {
		return domain.Recipe{}, repository.ErrRecipeNotFound
	}

	return r, nil
}

func (f *fakeRecipeRepository) Create(_ context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	recipe.ID = f.nextID
	f.nextID++
	f.records[recipe.ID] = recipe

	return recipe, nil
}

func (f *fakeRecipeRepository) Update(_ context.Context, recipe domain.Recipe) error {
	if _, ok := f.records[recipe.ID]; !ok {
		return repository.ErrRecipeNotFound
	}
	f.records[recipe.ID] = recipe

	return nil
}

func (f *fakeRecipeRepository) Delete(_ context.Context, id uint) error {
	delete(f.records, id)

	return nil
}

func TestCreateRecipeRoundTrip(t *testing.T) {
	svc := NewCatalogService(newFakeRecipeRepository())
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, domain.Recipe{Name: "Tacos", Price: pricing.PriceOf("Tacos"), Servings: 2})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
	assert.Equal(t, "Tacos", found.Name)
	assert.Equal(t, 119, found.Price)
	assert.Equal(t, 2, found.Servings)
}

func TestCreateRecipeNeverReusesIDs(t *testing.T) {
	svc := NewCatalogService(newFakeRecipeRepository())
	ctx := context.Background()

	first, err := svc.CreateRecipe(ctx, domain.Recipe{Name: "Sushi", Price: 149, Servings: 1})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteRecipe(ctx, first.ID))

	second, err := svc.CreateRecipe(ctx, domain.Recipe{Name: "Ramen", Price: 145, Servings: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRecipeStoresFieldsAsGiven(t *testing.T) {
	// The store does not second-guess its input: zero or garbage-coerced
	// values are kept, so callers decide how strict to be.
	svc := NewCatalogService(newFakeRecipeRepository())
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, domain.Recipe{Name: "Tacos", Price: 0, Servings: 2})
	require.NoError(t, err)

	found, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Price)
	assert.Equal(t, 2, found.Servings)
}

func TestListRecipesNewestFirst(t *testing.T) {
	svc := NewCatalogService(newFakeRecipeRepository())
	ctx := context.Background()

	for _, name := range []string{"Tacos", "Sushi", "Falafel"} {
		_, err := svc.CreateRecipe(ctx, domain.Recipe{Name: name, Price: pricing.PriceOf(name), Servings: 1})
		require.NoError(t, err)
	}

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Falafel", recipes[0].Name)
	assert.Equal(t, "Tacos", recipes[2].Name)
}

func TestUpdateRecipeReplacesFields(t *testing.T) {
	svc := NewCatalogService(newFakeRecipeRepository())
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, domain.Recipe{Name: "Tacos", Price: 119, Servings: 2})
	require.NoError(t, err)

	created.Servings = 1
	require.NoError(t, svc.UpdateRecipe(ctx, created))

	found, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Servings)
}

func TestUpdateRecipeMissing(t *testing.T) {
	svc := NewCatalogService(newFakeRecipeRepository())

	err := svc.UpdateRecipe(context.Background(), domain.Recipe{ID: 42, Name: "Tacos", Price: 119, Servings: 1})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteRecipeIdempotent(t *testing.T) {
	svc := NewCatalogService(newFakeRecipeRepository())
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, domain.Recipe{Name: "Tacos", Price: 119, Servings: 2})
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteRecipe(ctx, created.ID))
	assert.NoError(t, svc.DeleteRecipe(ctx, created.ID))

	_, err = svc.GetRecipe(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}
