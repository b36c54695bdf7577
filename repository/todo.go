package repository

import (
	"context"
	"errors"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTodoNotFound is returned when no document matches the given id.
var ErrTodoNotFound = errors.New("todo not found")

// TodoStore is the document-collection capability the service consumes.
// TodoRepo is the Mongo-backed implementation; tests swap in a memory one.
type TodoStore interface {
	GetAllTodos(ctx context.Context) ([]*model.Todo, error)
	GetTodoByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error)
	CreateTodo(ctx context.Context, todo *model.Todo) (primitive.ObjectID, error)
	UpdateTodo(ctx context.Context, id primitive.ObjectID, updates *model.Todo) error
	DeleteTodo(ctx context.Context, id primitive.ObjectID) error
}

type TodoRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for todos
func GetTodoRepo(client *mongo.Client) *TodoRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "todoapi")
	collectionName := utils.GetEnvAsString("TODOS_COLLECTION", "todos")
	return &TodoRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Retrieves every todo in the collection, unfiltered
func (r *TodoRepo) GetAllTodos(ctx context.Context) ([]*model.Todo, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	var todos []*model.Todo
	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &todos); err != nil {
		utils.TrackError("database", "todo_decode_failed")
		return nil, err
	}
	return todos, nil
}

// Looks up a single todo by its ObjectID
func (r *TodoRepo) GetTodoByID(ctx context.Context, id primitive.ObjectID) (*model.Todo, error) {
	timer := utils.TrackDBOperation("find_one", "todos")
	defer timer.ObserveDuration()

	var todo model.Todo
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTodoNotFound
		}
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	return &todo, nil
}

// Inserts a new todo and returns the id the storage layer assigned
func (r *TodoRepo) CreateTodo(ctx context.Context, todo *model.Todo) (primitive.ObjectID, error) {
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.InsertOne(ctx, todo)
	if err != nil {
		utils.TrackError("database", "todo_creation_failed")
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		utils.TrackError("database", "todo_creation_failed")
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}
	return id, nil
}

// Replaces the three content fields of a todo. The set is issued
// unconditionally; a missing document is a no-op here and is detected by
// the caller's re-fetch.
func (r *TodoRepo) UpdateTodo(ctx context.Context, id primitive.ObjectID, updates *model.Todo) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"title":       updates.Title,
			"description": updates.Description,
			"deadline":    updates.Deadline,
		},
	}

	if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}
	return nil
}

// Removes a todo from the collection
func (r *TodoRepo) DeleteTodo(ctx context.Context, id primitive.ObjectID) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.TrackError("database", "todo_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return ErrTodoNotFound
	}
	return nil
}
