// Package form is the client-side edit form: a single form bound either
// to a new-record draft or to one existing record being edited.
package form

import (
	"context"
	"errors"

	"github.com/gik339/recipe-catalog/internal/domain"
	"github.com/gik339/recipe-catalog/internal/pricing"
)

// ErrValidation is returned when a submit is rejected locally,
// before any network call.
var ErrValidation = errors.New("invalid form input")

// API is the server boundary the controller drives. pkg/client
// implements it.
type API interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*domain.Recipe, error)
	CreateRecipe(ctx context.Context, recipe domain.Recipe) error
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error
	DeleteRecipe(ctx context.Context, id uint) error
}

// Mode is the form's state: drafting a new record, or editing one by id.
type Mode int

const (
	ModeDrafting Mode = iota
	ModeEditing
)

// Draft holds the two editable fields. Unit and total price are derived
// on read and never stored here.
type Draft struct {
	Name     string
	Servings int
}

// Controller keeps the form consistent with the server-held collection.
// It is not safe for concurrent use; the client has a single logical
// thread of control.
type Controller struct {
	api      API
	notifier Notifier

	mode      Mode
	editingID uint
	draft     Draft

	// seededPrice is the stored unit price of the record being edited.
	// It backs the display for names that have left the menu table;
	// submitting still requires a live menu price.
	seededPrice int

	// records is the last successfully fetched snapshot. It is replaced
	// wholesale after every mutation, never patched in place.
	records []domain.Recipe
}

func NewController(api API, notifier Notifier) *Controller {
	return &Controller{
		api:      api,
		notifier: notifier,
	}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// EditingID reports which record the form is bound to, when editing.
func (c *Controller) EditingID() (uint, bool) {
	if c.mode != ModeEditing {
		return 0, false
	}

	return c.editingID, true
}

func (c *Controller) Draft() Draft {
	return c.draft
}

func (c *Controller) SetName(name string) {
	c.draft.Name = name
	c.seededPrice = 0
}

func (c *Controller) SetServings(servings int) {
	c.draft.Servings = servings
}

// UnitPrice is recomputed from the live price model on every read.
// A record whose name is no longer on the menu falls back to the price
// it was stored with, so editing it does not display 0.
func (c *Controller) UnitPrice() int {
	if price := pricing.PriceOf(c.draft.Name); price != 0 {
		return price
	}

	return c.seededPrice
}

func (c *Controller) TotalPrice() int {
	return c.UnitPrice() * c.draft.Servings
}

func (c *Controller) Tier() pricing.Tier {
	return pricing.TierOf(c.TotalPrice())
}

// Records returns the last fetched snapshot.
func (c *Controller) Records() []domain.Recipe {
	return c.records
}

// Refresh refetches the whole collection. On failure the previous
// snapshot is kept and a single notice is shown.
func (c *Controller) Refresh(ctx context.Context) error {
	records, err := c.api.ListRecipes(ctx)
	if err != nil {
		c.notifier.Notify("Could not fetch data from the server.", SeverityError)
		return err
	}

	c.records = records

	return nil
}

// SelectCurrent fetches one record and seeds the form with it. The
// binding is not live: if another actor changes the record afterwards,
// the form learns nothing until submit or refresh.
func (c *Controller) SelectCurrent(ctx context.Context, id uint) error {
	recipe, err := c.api.GetRecipe(ctx, id)
	if err != nil || recipe == nil {
		c.notifier.Notify("Could not fetch the selected recipe.", SeverityError)
		if err == nil {
			err = errors.New("recipe not found")
		}
		return err
	}

	c.mode = ModeEditing
	c.editingID = recipe.ID
	c.draft = Draft{
		Name:     recipe.Name,
		Servings: recipe.Servings,
	}
	c.seededPrice = recipe.Price

	c.notifier.Notify("The form was filled for editing.", SeverityInfo)

	return nil
}

// Cancel leaves editing without saving.
func (c *Controller) Cancel() {
	c.reset()
	c.notifier.Notify("Editing was cancelled.", SeverityInfo)
}

// Reset clears the form back to an empty draft.
func (c *Controller) Reset() {
	c.reset()
	c.notifier.Notify("The form was cleared.", SeverityInfo)
}

// Submit validates locally, then issues a create or an update depending
// on the mode. The submitted price always comes from the live price
// model, not from anything displayed. Any successful submit returns the
// form to drafting and refetches the collection.
func (c *Controller) Submit(ctx context.Context) error {
	price := pricing.PriceOf(c.draft.Name)
	if c.draft.Name == "" || price == 0 || c.draft.Servings <= 0 {
		c.notifier.Notify("Check the form.", SeverityError)
		return ErrValidation
	}

	recipe := domain.Recipe{
		Name:     c.draft.Name,
		Price:    price,
		Servings: c.draft.Servings,
	}

	var err error
	if id, editing := c.EditingID(); editing {
		recipe.ID = id
		err = c.api.UpdateRecipe(ctx, recipe)
	} else {
		err = c.api.CreateRecipe(ctx, recipe)
	}
	if err != nil {
		// No partial transition: the form keeps its state.
		c.notifier.Notify("Could not save the recipe.", SeverityError)
		return err
	}

	if recipe.ID != 0 {
		c.notifier.Notify("The recipe was updated.", SeverityInfo)
	} else {
		c.notifier.Notify("The recipe was created.", SeverityInfo)
	}

	c.reset()

	return c.Refresh(ctx)
}

// Delete removes a record. If the form is editing that same record it
// falls back to drafting; otherwise the form is untouched.
func (c *Controller) Delete(ctx context.Context, id uint) error {
	if err := c.api.DeleteRecipe(ctx, id); err != nil {
		c.notifier.Notify("Could not delete the recipe.", SeverityError)
		return err
	}

	c.notifier.Notify("The recipe was deleted.", SeverityInfo)

	if editingID, editing := c.EditingID(); editing && editingID == id {
		c.reset()
	}

	return c.Refresh(ctx)
}

func (c *Controller) reset() {
	c.mode = ModeDrafting
	c.editingID = 0
	c.draft = Draft{}
	c.seededPrice = 0
}
