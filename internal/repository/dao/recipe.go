package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRecipe  = errors.New("invalid recipe")
)

type Recipe struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Price    int    `gorm:"not null"`
	Servings int    `gorm:"not null"`
}

type RecipeDAO struct {
	db *gorm.DB
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{
		db: db,
	}
}

// FindAll returns every recipe, most recently created first.
func (d *RecipeDAO) FindAll(ctx context.Context) ([]Recipe, error) {
	var recipes []Recipe
	result := d.db.WithContext(ctx).Order("id DESC").Find(&recipes)
	if result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

func (d *RecipeDAO) FindByID(ctx context.Context, id uint) (Recipe, error) {
	var recipe Recipe
	result := d.db.WithContext(ctx).First(&recipe, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Recipe{}, ErrRecipeNotFound
		}

		return Recipe{}, result.Error
	}

	return recipe, nil
}

func (d *RecipeDAO) Insert(ctx context.Context, recipe Recipe) (Recipe, error) {
	result := d.db.WithContext(ctx).Create(&recipe)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			(err.Code == pgerrcode.NotNullViolation || err.Code == pgerrcode.CheckViolation) {
			return Recipe{}, ErrInvalidRecipe
		}

		return Recipe{}, result.Error
	}

	return recipe, nil
}

// Update replaces every mutable field of the row in a single statement.
// A missing row is reported as ErrRecipeNotFound; callers decide whether
// that is worth surfacing.
func (d *RecipeDAO) Update(ctx context.Context, recipe Recipe) error {
	result := d.db.WithContext(ctx).
		Model(&Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"name":     recipe.Name,
			"price":    recipe.Price,
			"servings": recipe.Servings,
		})
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			(err.Code == pgerrcode.NotNullViolation || err.Code == pgerrcode.CheckViolation) {
			return ErrInvalidRecipe
		}

		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// Delete removes the row with the given id. Deleting an absent id is a
// no-op success, which keeps the operation idempotent.
func (d *RecipeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
