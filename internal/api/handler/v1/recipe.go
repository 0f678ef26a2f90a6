package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gik339/recipe-catalog/internal/api/handler/v1/request"
	"github.com/gik339/recipe-catalog/internal/api/handler/v1/response"
	"github.com/gik339/recipe-catalog/internal/config"
	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/service"
)

type CatalogService interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (domain.Recipe, error)
	CreateRecipe(ctx context.Context, recipe domain.Recipe) (domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error
	DeleteRecipe(ctx context.Context, id uint) error
}

type RecipeHandler struct {
	conf *config.ValidationConfig
	svc  CatalogService
}

func NewRecipeHandler(conf *config.ValidationConfig, svc CatalogService) *RecipeHandler {
	return &RecipeHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListRecipes godoc
// @Summary      List all recipes
// @Description  Returns every recipe, most recently created first
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   domain.Recipe
// @Failure      500  {object}  response.Err
// @Router       /recipes [get]
func (h *RecipeHandler) HandleListRecipes(ctx *gin.Context) {
	recipes, err := h.svc.ListRecipes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListRecipes -> h.svc.ListRecipes -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusOK, recipes)
}

// HandleGetRecipe godoc
// @Summary      Get one recipe
// @Description  Returns the recipe with the given id, or null when absent
// @Tags         recipes
// @Produce      json
// @Param        recipeID  path      integer  true  "recipe ID"
// @Success      200  {object}  domain.Recipe
// @Failure      500  {object}  response.Err
// @Router       /recipes/{recipeID} [get]
func (h *RecipeHandler) HandleGetRecipe(ctx *gin.Context) {
	// An unparsable id behaves like a miss, not an error.
	id, err := strconv.ParseUint(ctx.Param("recipeID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}

	recipe, err := h.svc.GetRecipe(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			// Absence is reported as an explicit null body, not a 404.
			ctx.JSON(http.StatusOK, nil)
			return
		}

		err = fmt.Errorf("HandleGetRecipe -> h.svc.GetRecipe -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

// HandleCreateRecipe godoc
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveRecipeRequest  true  "recipe fields"
// @Success      200    {object}  response.Msg
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /recipes [post]
func (h *RecipeHandler) HandleCreateRecipe(ctx *gin.Context) {
	var req request.SaveRecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if h.conf.Strict {
		if err := req.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}

	_, err := h.svc.CreateRecipe(ctx.Request.Context(), domain.Recipe{
		Name:     req.Name,
		Price:    int(req.Price),
		Servings: int(req.Servings),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecipe) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateRecipe -> h.svc.CreateRecipe -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Msg{Message: response.MsgRecipeCreated})
}

// HandleUpdateRecipe godoc
// @Summary      Update a recipe
// @Description  Replaces every field except the id. The id travels in the body.
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveRecipeRequest  true  "recipe fields including id"
// @Success      200    {object}  response.Msg
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /recipes [put]
func (h *RecipeHandler) HandleUpdateRecipe(ctx *gin.Context) {
	var req request.SaveRecipeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if h.conf.Strict {
		if err := req.ValidateForUpdate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
	}

	err := h.svc.UpdateRecipe(ctx.Request.Context(), domain.Recipe{
		ID:       uint(req.ID),
		Name:     req.Name,
		Price:    int(req.Price),
		Servings: int(req.Servings),
	})
	if err != nil && !errors.Is(err, service.ErrRecipeNotFound) {
		if errors.Is(err, service.ErrInvalidRecipe) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleUpdateRecipe -> h.svc.UpdateRecipe -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	// A missing id still gets the generic confirmation; callers cannot
	// tell the difference and the client relies on that.
	ctx.JSON(http.StatusOK, response.Msg{Message: response.MsgRecipeUpdated})
}

// HandleDeleteRecipe godoc
// @Summary      Delete a recipe
// @Description  Deleting an id that does not exist is a no-op success.
// @Tags         recipes
// @Produce      json
// @Param        recipeID  path      integer  true  "recipe ID"
// @Success      200  {object}  response.Msg
// @Failure      500  {object}  response.Err
// @Router       /recipes/{recipeID} [delete]
func (h *RecipeHandler) HandleDeleteRecipe(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("recipeID"), 10, 64)
	if err != nil {
		// Unparsable id deletes nothing, which is indistinguishable
		// from deleting an absent row.
		ctx.JSON(http.StatusOK, response.Msg{Message: response.MsgRecipeDeleted})
		return
	}

	if err = h.svc.DeleteRecipe(ctx.Request.Context(), uint(id)); err != nil {
		err = fmt.Errorf("HandleDeleteRecipe -> h.svc.DeleteRecipe -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Msg{Message: response.MsgRecipeDeleted})
}
