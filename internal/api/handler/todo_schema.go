package handler

type createTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

// updateTodoRequest carries the two optional fields of an update. Pointers
// distinguish "absent" from zero values; the at-least-one rule and the
// non-empty-text rule are enforced by the service. A wrong-typed value
// (e.g. completed as a string) fails JSON binding and never reaches it.
type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type deleteTodoResponse struct {
	Msg string `json:"msg"`
}
