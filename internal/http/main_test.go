//go:build integration

package http

import (
	"os"
	"testing"

	"github.com/guttosm/storefront-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongo(m))
}
