package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"bloglist/db"

	"github.com/stretchr/testify/require"
)

// SetupTestRepositoryFactory returns a repository factory for tests. By
// default it uses the in-memory backend; setting MONGODB_TEST_URI runs the
// same suite against a real MongoDB instance.
func SetupTestRepositoryFactory(t *testing.T) (*db.RepositoryFactory, func()) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		return db.NewRepositoryFactory(nil, "bloglist_test"), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, uri)
	require.NoError(t, err)

	dbName := "bloglist_test"
	err = db.EnsureIndexes(ctx, client, dbName)
	require.NoError(t, err)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Database(dbName).Drop(ctx)
		_ = client.Disconnect(ctx)
	}

	return db.NewRepositoryFactory(client, dbName), cleanup
}
