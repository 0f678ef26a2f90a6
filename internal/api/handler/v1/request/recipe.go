package request

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Number accepts JSON numbers and numeric strings. Anything that does
// not parse coerces to 0 and is stored as-is rather than rejected;
// strict mode catches the zeros afterwards.
type Number int

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}

	*n = Number(int(v))

	return nil
}

type SaveRecipeRequest struct {
	ID       Number `json:"id"`
	Name     string `json:"name"`
	Price    Number `json:"price"`
	Servings Number `json:"servings"`
}

func (req *SaveRecipeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Price, validation.Required, validation.Min(Number(1))),
		validation.Field(&req.Servings, validation.Required, validation.Min(Number(1))),
	)
}

// ValidateForUpdate additionally requires the record id, which travels
// in the body on PUT.
func (req *SaveRecipeRequest) ValidateForUpdate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, validation.Min(Number(1))),
	); err != nil {
		return err
	}

	return req.Validate()
}
