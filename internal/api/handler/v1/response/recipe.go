package response

// Msg is the confirmation body returned by every mutating operation.
type Msg struct {
	Message string `json:"message"`
}

const (
	MsgRecipeCreated = "The recipe was created."
	MsgRecipeUpdated = "The recipe was updated."
	MsgRecipeDeleted = "The recipe was deleted."
)
