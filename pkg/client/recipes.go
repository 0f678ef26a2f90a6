// Package client is a small REST client for the recipe catalog API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gik339/recipe-catalog/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client talks to the catalog's /recipes resource.
type Client struct {
	httpClient *resty.Client
}

// New builds a client against the given base URL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)

	return &Client{
		httpClient: restyClient,
	}
}

// apiError mirrors the server's uniform error body.
type apiError struct {
	Message string `json:"message"`
	Detail  string `json:"error"`
}

// savePayload is the body for both create and update. The id is included
// only on update; the server reads it from the body, not the path.
type savePayload struct {
	ID       uint   `json:"id,omitempty"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Servings int    `json:"servings"`
}

type confirmation struct {
	Message string `json:"message"`
}

// ListRecipes fetches the full collection, newest first.
func (c *Client) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	result := new([]domain.Recipe)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/recipes")
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, statusError("list recipes", resp.StatusCode(), apiErr)
	}

	return *result, nil
}

// GetRecipe fetches one record. The server answers an absent id with a
// JSON null body, which is returned here as a nil record.
func (c *Client) GetRecipe(ctx context.Context, id uint) (*domain.Recipe, error) {
	result := new(domain.Recipe)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(fmt.Sprintf("/recipes/%d", id))
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, statusError("get recipe", resp.StatusCode(), apiErr)
	}

	if strings.TrimSpace(string(resp.Body())) == "null" {
		return nil, nil
	}

	return result, nil
}

func (c *Client) CreateRecipe(ctx context.Context, recipe domain.Recipe) error {
	return c.save(ctx, savePayload{
		Name:     recipe.Name,
		Price:    recipe.Price,
		Servings: recipe.Servings,
	})
}

// UpdateRecipe sends the full field set with the id in the body,
// honoring the API's PUT asymmetry.
func (c *Client) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	return c.save(ctx, savePayload{
		ID:       recipe.ID,
		Name:     recipe.Name,
		Price:    recipe.Price,
		Servings: recipe.Servings,
	})
}

func (c *Client) save(ctx context.Context, payload savePayload) error {
	result := new(confirmation)
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr)

	var (
		resp *resty.Response
		err  error
		op   = "create recipe"
	)
	if payload.ID != 0 {
		op = "update recipe"
		resp, err = req.Put("/recipes")
	} else {
		resp, err = req.Post("/recipes")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return statusError(op, resp.StatusCode(), apiErr)
	}

	return nil
}

func (c *Client) DeleteRecipe(ctx context.Context, id uint) error {
	result := new(confirmation)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Delete(fmt.Sprintf("/recipes/%d", id))
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return statusError("delete recipe", resp.StatusCode(), apiErr)
	}

	return nil
}

func statusError(op string, code int, apiErr *apiError) error {
	message := ""
	if apiErr != nil {
		message = apiErr.Message
	}

	return fmt.Errorf("%s: api error: status=%d, message=%s", op, code, message)
}
