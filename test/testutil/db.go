package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"blogapi/internal/repo"
)

// OpenTestDB connects to the mongo instance named by TEST_MONGO_URI and hands
// back a throwaway database. Tests are skipped when the variable is unset.
func OpenTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping mongo test")
	}
	client, db, err := repo.Connect(context.Background(), uri, "blogapi_test")
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	if err := db.Drop(context.Background()); err != nil {
		t.Fatalf("drop test db: %v", err)
	}
	return db, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	}
}
