package test

import (
	"context"
	"errors"
	"testing"

	"main/model"
	"main/repository"
	"main/test/testutils"
	"main/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTodoServiceCreate(t *testing.T) {
	store := testutils.NewMemoryTodoStore()
	svc := usecase.NewTodoService(store)
	ctx := context.Background()

	t.Run("assigns a fresh id", func(t *testing.T) {
		created, err := svc.CreateTodo(ctx, &model.Todo{
			Title:       "Buy milk",
			Description: "2%",
			Deadline:    "2024-01-01",
		})
		if err != nil {
			t.Fatalf("CreateTodo failed: %v", err)
		}
		if created.ID.IsZero() {
			t.Error("Expected a storage-assigned id")
		}
		if created.Title != "Buy milk" {
			t.Errorf("Re-fetched todo differs from input: %+v", created)
		}
	})

	t.Run("ignores a client-supplied id", func(t *testing.T) {
		clientID := primitive.NewObjectID()
		created, err := svc.CreateTodo(ctx, &model.Todo{
			ID:          clientID,
			Title:       "Walk dog",
			Description: "morning",
			Deadline:    "2024-02-01",
		})
		if err != nil {
			t.Fatalf("CreateTodo failed: %v", err)
		}
		if created.ID == clientID {
			t.Error("Client-supplied id was not stripped on creation")
		}
	})
}

func TestTodoServiceUpdate(t *testing.T) {
	store := testutils.NewMemoryTodoStore()
	svc := usecase.NewTodoService(store)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, &model.Todo{
		Title:       "Buy milk",
		Description: "2%",
		Deadline:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	t.Run("replaces all fields", func(t *testing.T) {
		updated, err := svc.UpdateTodo(ctx, created.ID, &model.Todo{
			Title:       "Buy oat milk",
			Description: "2%",
			Deadline:    "2024-01-02",
		})
		if err != nil {
			t.Fatalf("UpdateTodo failed: %v", err)
		}
		if updated.Title != "Buy oat milk" || updated.Deadline != "2024-01-02" {
			t.Errorf("Update not a full replacement: %+v", updated)
		}

		fetched, err := svc.GetTodo(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetTodo failed: %v", err)
		}
		if fetched.Title != "Buy oat milk" {
			t.Errorf("Fetched todo not updated: %+v", fetched)
		}
	})

	t.Run("unknown id yields not found via re-fetch", func(t *testing.T) {
		_, err := svc.UpdateTodo(ctx, primitive.NewObjectID(), &model.Todo{
			Title:       "x",
			Description: "y",
			Deadline:    "z",
		})
		if !errors.Is(err, repository.ErrTodoNotFound) {
			t.Errorf("Expected ErrTodoNotFound, got %v", err)
		}
	})
}

func TestTodoServiceDelete(t *testing.T) {
	store := testutils.NewMemoryTodoStore()
	svc := usecase.NewTodoService(store)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, &model.Todo{
		Title:       "Buy milk",
		Description: "2%",
		Deadline:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}

	if err := svc.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}

	if _, err := svc.GetTodo(ctx, created.ID); !errors.Is(err, repository.ErrTodoNotFound) {
		t.Errorf("Expected ErrTodoNotFound after delete, got %v", err)
	}

	if err := svc.DeleteTodo(ctx, created.ID); !errors.Is(err, repository.ErrTodoNotFound) {
		t.Errorf("Expected ErrTodoNotFound on second delete, got %v", err)
	}
}

func TestTodoServiceList(t *testing.T) {
	store := testutils.NewMemoryTodoStore()
	svc := usecase.NewTodoService(store)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		if _, err := svc.CreateTodo(ctx, &model.Todo{
			Title:       title,
			Description: "d",
			Deadline:    "2024-01-01",
		}); err != nil {
			t.Fatalf("CreateTodo failed: %v", err)
		}
	}

	todos, err := svc.GetTodos(ctx)
	if err != nil {
		t.Fatalf("GetTodos failed: %v", err)
	}
	if len(todos) != 3 {
		t.Errorf("Expected 3 todos, got %d", len(todos))
	}
	for _, todo := range todos {
		if todo.ID.IsZero() {
			t.Error("Listed todo has no id")
		}
	}
}
