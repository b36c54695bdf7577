package testutils

import (
	"context"
	"sync"

	"main/model"
	"main/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryTodoStore is an in-memory repository.TodoStore for tests that do
// not need a live MongoDB. It mirrors the Mongo implementation's
// semantics, including the unconditional no-op update on a missing id.
type MemoryTodoStore struct {
	mu    sync.Mutex
	todos map[primitive.ObjectID]model.Todo

	// FailNext makes the next operation return this error, for driver
	// failure paths.
	FailNext error
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{todos: make(map[primitive.ObjectID]model.Todo)}
}

func (s *MemoryTodoStore) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

func (s *MemoryTodoStore) GetAllTodos(ctx context.Context) ([]*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}

	var todos []*model.Todo
	for _, todo := range s.todos {
		t := todo
		todos = append(todos, &t)
	}
	return todos, nil
}

func (s *MemoryTodoStore) GetTodoByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}

	todo, ok := s.todos[id]
	if !ok {
		return nil, repository.ErrTodoNotFound
	}
	return &todo, nil
}

func (s *MemoryTodoStore) CreateTodo(ctx context.Context, todo *model.Todo) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return primitive.NilObjectID, err
	}

	id := todo.ID
	if id.IsZero() {
		id = primitive.NewObjectID()
	}
	stored := *todo
	stored.ID = id
	s.todos[id] = stored
	return id, nil
}

func (s *MemoryTodoStore) UpdateTodo(ctx context.Context, id primitive.ObjectID, updates *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	todo, ok := s.todos[id]
	if !ok {
		// Same as Mongo's UpdateOne on a missing document: no match, no error.
		return nil
	}
	todo.Title = updates.Title
	todo.Description = updates.Description
	todo.Deadline = updates.Deadline
	s.todos[id] = todo
	return nil
}

func (s *MemoryTodoStore) DeleteTodo(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	if _, ok := s.todos[id]; !ok {
		return repository.ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}
