//go:build integration

// Package testutil starts the MongoDB containers used by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

var (
	packageMongo *mongodb.MongoDBContainer
	packageURI   string
	dbSeq        atomic.Int64
)

func startMongo(ctx context.Context) (*mongodb.MongoDBContainer, string, error) {
	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, "", fmt.Errorf("start mongo container: %w", err)
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, "", fmt.Errorf("mongo connection string: %w", err)
	}
	return container, uri, nil
}

// RunWithMongo starts one container for the whole test binary, runs the
// tests and terminates it. Call it from TestMain:
//
//	os.Exit(testutil.RunWithMongo(m))
func RunWithMongo(m *testing.M) int {
	ctx := context.Background()
	container, uri, err := startMongo(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	packageMongo, packageURI = container, uri

	code := m.Run()

	if err := testcontainers.TerminateContainer(container); err != nil {
		fmt.Fprintf(os.Stderr, "terminate mongo container: %v\n", err)
	}
	return code
}

// MongoURI returns the URI of the container started by RunWithMongo.
func MongoURI() string {
	if packageMongo == nil {
		panic("testutil: MongoURI called outside RunWithMongo")
	}
	return packageURI
}

// StartMongo starts a container owned by t and returns its URI.
func StartMongo(t testing.TB) string {
	t.Helper()
	ctx := context.Background()
	container, uri, err := startMongo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	testcontainers.CleanupContainer(t, container)
	return uri
}

// DatabaseName derives a database name unique to t, so tests sharing a
// container never see each other's documents.
func DatabaseName(t testing.TB) string {
	name := strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_").Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d_%d", name, time.Now().Unix()%100000, dbSeq.Add(1))
}
