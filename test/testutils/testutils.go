package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"main/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestEnvironment sets the environment variables tests rely on.
func SetupTestEnvironment() {
	os.Setenv("GO_ENV", "test")

	if os.Getenv("MONGO_URI") == "" {
		os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	}
	os.Setenv("MONGO_DB", "todoapi_test")
	os.Setenv("TODOS_COLLECTION", "todos")
}

// SetupTestDB connects to the test MongoDB instance and returns the client
// with a cleanup function that drops the test database. Tests are skipped
// when no MongoDB is reachable.
func SetupTestDB(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	if os.Getenv("GO_ENV") != "test" {
		SetupTestEnvironment()
	}

	uri := os.Getenv("MONGO_URI")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100)).
		SetMinPoolSize(utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		t.Skipf("Skipping: cannot connect to MongoDB at %s: %v", uri, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		t.Skipf("Skipping: MongoDB at %s not reachable: %v", uri, err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dbName := os.Getenv("MONGO_DB")
		if dbName != "" {
			if err := client.Database(dbName).Drop(ctx); err != nil {
				t.Logf("Warning: failed to drop test database %s: %v", dbName, err)
			}
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: failed to disconnect: %v", err)
		}
	}

	return client, cleanup
}
