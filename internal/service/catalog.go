package service

import (
	"context"
	"fmt"

	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/repository"
)

var (
	ErrRecipeNotFound = repository.ErrRecipeNotFound
	ErrInvalidRecipe  = repository.ErrInvalidRecipe
)

type RecipeRepository interface {
	FindAll(ctx context.Context) ([]domain.Recipe, error)
	FindByID(ctx context.Context, id uint) (domain.Recipe, error)
	Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	Update(ctx context.Context, recipe domain.Recipe) error
	Delete(ctx context.Context, id uint) error
}

// CatalogService owns the authoritative recipe collection.
type CatalogService struct {
	repo RecipeRepository
}

func NewCatalogService(repo RecipeRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListRecipes returns the whole collection, newest id first.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return recipes, nil
}

func (s *CatalogService) GetRecipe(ctx context.Context, id uint) (domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return recipe, nil
}

// CreateRecipe assigns a fresh id. Ids are never reused, even after the
// record is deleted. Field values are stored as given: rejecting bad
// input is the job of the strict validation surface and of the client's
// own form checks, not of the store.
func (s *CatalogService) CreateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	created, err := s.repo.Create(ctx, domain.Recipe{
		Name:     recipe.Name,
		Price:    recipe.Price,
		Servings: recipe.Servings,
	})
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateRecipe replaces every field except the id. It trusts the caller
// on the name/price pairing; the store never recomputes the price.
func (s *CatalogService) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	if err := s.repo.Update(ctx, recipe); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

// DeleteRecipe is idempotent: deleting an id that is already gone
// succeeds as a no-op.
func (s *CatalogService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
