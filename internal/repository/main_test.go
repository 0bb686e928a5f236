//go:build integration

package repository

import (
	"os"
	"testing"

	"github.com/guttosm/storefront-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongo(m))
}

// newTestDB connects to a database of its own in the shared container.
func newTestDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.MongoURI(), testutil.DatabaseName(t))
	require.NoError(t, err)
	return db
}
