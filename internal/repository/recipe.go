package repository

import (
	"context"
	"fmt"

	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/repository/dao"
)

var (
	ErrRecipeNotFound = dao.ErrRecipeNotFound
	ErrInvalidRecipe  = dao.ErrInvalidRecipe
)

type RecipeDAO interface {
	FindAll(ctx context.Context) ([]dao.Recipe, error)
	FindByID(ctx context.Context, id uint) (dao.Recipe, error)
	Insert(ctx context.Context, recipe dao.Recipe) (dao.Recipe, error)
	Update(ctx context.Context, recipe dao.Recipe) error
	Delete(ctx context.Context, id uint) error
}

type RecipeRepository struct {
	dao RecipeDAO
}

func NewRecipeRepository(dao RecipeDAO) *RecipeRepository {
	return &RecipeRepository{
		dao: dao,
	}
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]domain.Recipe, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(found))
	for _, recipe := range found {
		recipes = append(recipes, r.daoToDomain(recipe))
	}

	return recipes, nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uint) (domain.Recipe, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RecipeRepository) Create(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(recipe))
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe domain.Recipe) error {
	if err := r.dao.Update(ctx, r.domainToDao(recipe)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RecipeRepository) daoToDomain(recipe dao.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:       recipe.ID,
		Name:     recipe.Name,
		Price:    recipe.Price,
		Servings: recipe.Servings,
	}
}

func (r *RecipeRepository) domainToDao(recipe domain.Recipe) dao.Recipe {
	return dao.Recipe{
		ID:       recipe.ID,
		Name:     recipe.Name,
		Price:    recipe.Price,
		Servings: recipe.Servings,
	}
}
