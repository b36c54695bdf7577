package dto

import "main/model"

// CreateTodoRequest is the POST /todos/ payload. A client-supplied id is
// accepted but ignored; creation always assigns a fresh one.
type CreateTodoRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Deadline    string `json:"deadline" binding:"required"`
}

// UpdateTodoRequest is the PUT /todos/:id payload. All three fields are
// required: updates are full replacements, not merges.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Deadline    string `json:"deadline" binding:"required"`
}

type TodoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// Convert model.Todo to TodoResponse, rewriting the storage _id into the
// public string id.
func ToTodoResponse(todo *model.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID.Hex(),
		Title:       todo.Title,
		Description: todo.Description,
		Deadline:    todo.Deadline,
	}
}

// Convert slice of model.Todo to slice of TodoResponse. Always returns a
// non-nil slice so an empty collection serializes as [].
func ToTodoResponses(todos []*model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = ToTodoResponse(todo)
	}
	return responses
}
