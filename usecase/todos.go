package usecase

import (
	"context"

	"main/model"
	"main/repository"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TodoService struct {
	store repository.TodoStore
}

func NewTodoService(store repository.TodoStore) *TodoService {
	return &TodoService{store: store}
}

// Get every todo in the collection
func (svc *TodoService) GetTodos(ctx context.Context) ([]*model.Todo, error) {
	utils.TrackTodoOperation("list")
	return svc.store.GetAllTodos(ctx)
}

// Get a single todo by id
func (svc *TodoService) GetTodo(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	utils.TrackTodoOperation("get")
	return svc.store.GetTodoByID(ctx, id)
}

// Create a todo and return it as persisted. The insert result is re-fetched
// rather than echoed back so the response reflects exactly what storage
// wrote, including any storage-side defaults.
func (svc *TodoService) CreateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	utils.TrackTodoOperation("create")

	// Creation always assigns a fresh identifier.
	todo.ID = primitive.NilObjectID

	id, err := svc.store.CreateTodo(ctx, todo)
	if err != nil {
		return nil, err
	}
	return svc.store.GetTodoByID(ctx, id)
}

// Replace all content fields of a todo and return the updated document.
// The set is issued unconditionally; absence of the document is detected by
// the re-fetch, which yields repository.ErrTodoNotFound.
func (svc *TodoService) UpdateTodo(ctx context.Context, id primitive.ObjectID, updates *model.Todo) (*model.Todo, error) {
	utils.TrackTodoOperation("update")

	if err := svc.store.UpdateTodo(ctx, id, updates); err != nil {
		return nil, err
	}
	return svc.store.GetTodoByID(ctx, id)
}

// Delete a todo by id
func (svc *TodoService) DeleteTodo(ctx context.Context, id primitive.ObjectID) error {
	utils.TrackTodoOperation("delete")
	return svc.store.DeleteTodo(ctx, id)
}
