package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/gommon/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gcordner/chargeguard/internal/model"
	"github.com/gcordner/chargeguard/pkg/db/transactor"
)

const (
	connectionTimeout = 3 * time.Second
)

const (
	pgContainerName = "pg-test-chargeguard"
	pgPort          = "5432"
	pgTestUser      = "test"
	pgTestPassword  = "test"
	pgTestDB        = "chargeguard"
)

const (
	mongoContainerName = "mongo-test-chargeguard"
	mongoPort          = "27017"
	mongoTestUser      = "test"
	mongoTestPassword  = "test"
	mongoTestDatabase  = "chargeguard"
)

var pgPool *pgxpool.Pool
var mongoClient *mongo.Client

func TestMain(m *testing.M) {
	// build docker pool
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		log.Fatalf("failed to connect to docker - %v", err)
	}

	// create network for containers
	network, err := dockerPool.Client.CreateNetwork(docker.CreateNetworkOptions{Name: "chargeguard-test-net"})
	if err != nil {
		log.Fatalf("failed to create network - %v", err)
	}

	// start postgres
	postgres, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       pgContainerName,
		Repository: "postgres",
		Tag:        "latest",
		NetworkID:  network.ID,
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", pgTestUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", pgTestPassword),
			fmt.Sprintf("POSTGRES_DB=%s", pgTestDB),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", pgPort)}},
		},
	})
	if err != nil {
		log.Fatalf("failed to start postgresql - %v", err)
	}

	// run migrations
	flywayCmd := []string{
		fmt.Sprintf("-url=jdbc:postgresql://%s:%s/%s", pgContainerName, pgPort, pgTestDB),
		fmt.Sprintf("-user=%s", pgTestUser),
		fmt.Sprintf("-password=%s", pgTestPassword),
		"-connectRetries=5",
		"migrate",
	}

	migrationsPath, err := filepath.Abs("../../migrations")
	if err != nil {
		log.Fatalf("failed to find migrations path - %v", err)
	}

	flywayMounts := []string{
		fmt.Sprintf("%s:/flyway/sql", migrationsPath),
	}

	flyway, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "flyway/flyway",
		Tag:        "latest",
		NetworkID:  network.ID,
		Cmd:        flywayCmd,
		Mounts:     flywayMounts,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		log.Fatalf("failed to start flyway migrations - %v", err)
	}

	// waiting for flyway container to be destroyed
	err = dockerPool.Retry(func() error {
		if _, ok := dockerPool.ContainerByName(flyway.Container.Name); ok {
			return errors.New("flyway migrations are still in progress")
		}
		return nil
	})
	if err != nil {
		log.Fatalf("failed to await flyway migrations - %v", err)
	}

	// connect to postgres
	pgUri := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", pgTestUser, pgTestPassword, pgPort, pgTestDB)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		pgPool, err = pgxpool.Connect(ctx, pgUri)
		if err != nil {
			return err
		}
		return pgPool.Ping(ctx)
	})
	if err != nil {
		log.Fatalf("failed to establish connection to postgresql - %v", err)
	}

	// start mongo
	mongodb, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       mongoContainerName,
		Repository: "mongo",
		Tag:        "latest",
		NetworkID:  network.ID,
		Env: []string{
			fmt.Sprintf("MONGO_INITDB_ROOT_USERNAME=%s", mongoTestUser),
			fmt.Sprintf("MONGO_INITDB_ROOT_PASSWORD=%s", mongoTestPassword),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", mongoPort)}},
		},
	})
	if err != nil {
		log.Fatalf("failed to start mongodb - %v", err)
	}

	// connect to mongo
	mongoUri := fmt.Sprintf("mongodb://%s:%s@localhost:%s/?maxPoolSize=100", mongoTestUser, mongoTestPassword, mongoPort)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoUri))
		if err != nil {
			return err
		}
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Fatalf("failed to establish connection to mongodb - %v", err)
	}

	// start tests
	code := m.Run()

	// purge postgresql
	if err := dockerPool.Purge(postgres); err != nil {
		log.Fatalf("failed to purge postgresql - %v", err)
	}

	// purge mongodb
	if err := dockerPool.Purge(mongodb); err != nil {
		log.Fatalf("failed to purge mongodb - %v", err)
	}

	// remove network
	if err := dockerPool.Client.RemoveNetwork(network.ID); err != nil {
		log.Fatalf("failed to remove network - %v", err)
	}

	os.Exit(code)
}

func TestPostgresEntryRps(t *testing.T) {
	entryRps := NewPostgresEntryRepository(transactor.NewPgxWithinTransactionExecutor(pgPool))
	t.Log("running tests for postgres")
	testEntryRps(t, entryRps)
}

func TestTransactionalEntryRps(t *testing.T) {
	entryRps := NewTransactionalEntryRepository(
		NewPostgresEntryRepository(transactor.NewPgxWithinTransactionExecutor(pgPool)),
		transactor.NewPgxTransactor(pgPool),
	)
	t.Log("running tests for postgres with mutations inside transactions")
	testEntryRps(t, entryRps)
}

func TestMongoEntryRps(t *testing.T) {
	entryRps := NewMongoEntryRepository(mongoClient, mongoTestDatabase)
	t.Log("running tests for mongo")
	testEntryRps(t, entryRps)
}

func testEntryRps(t *testing.T, entryRps EntryRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	createdAt := time.Date(2026, time.August, 12, 9, 30, 0, 0, time.UTC)

	entries := []*model.Entry{
		{
			ID:            "53b9062b-0f45-4671-8c01-52fce0d8c750",
			FirstName:     "Jane",
			LastName:      "Doe",
			StreetAddress: "1 Main St",
			Email:         "jane@x.com",
			Phone:         "555-123-4567",
			Status:        "Collection - FCR",
			CreatedAt:     createdAt,
		},
		{
			ID:        "48fa2e4f-7937-4257-ac61-a42ef9f45f69",
			FirstName: "Tom",
			LastName:  "Brown",
			Email:     "tom@y.org",
			Status:    "Paid",
			CreatedAt: createdAt.Add(time.Second),
		},
		{
			ID:        "3b9974de-ed71-4a5d-9121-42213e526234",
			FirstName: "Ann",
			LastName:  "Smith",
			Phone:     "999-888-7777",
			Status:    "Pursuing Collection",
			CreatedAt: createdAt.Add(2 * time.Second),
		},
	}

	entryJane := entries[0]
	entryTom := entries[1]
	entryAnn := entries[2]

	t.Logf("create %d entries", len(entries))
	{
		for _, e := range entries {
			err := entryRps.Create(ctx, e)
			require.NoError(t, err, "failed to create entry %s", e.ID)
		}
	}

	t.Log("verify entries are listed in creation order")
	{
		dbEntries, err := entryRps.FindAll(ctx)
		require.NoError(t, err, "failed to read entries")
		require.Len(t, dbEntries, len(entries), "%d entries were created, but got %d", len(entries), len(dbEntries))
		for i, e := range entries {
			require.Equal(t, e.ID, dbEntries[i].ID, "entry at index %d is out of creation order", i)
		}
	}

	t.Logf("find entry by id %s", entryJane.ID)
	{
		dbEntry, err := entryRps.FindByID(ctx, entryJane.ID)
		require.NoError(t, err, "failed to read entry")
		require.NotNil(t, dbEntry, "entry was created, but not found in database")
		require.Equal(t, entryJane.FirstName, dbEntry.FirstName)
		require.Equal(t, entryJane.LastName, dbEntry.LastName)
		require.Equal(t, entryJane.StreetAddress, dbEntry.StreetAddress)
		require.Equal(t, entryJane.Email, dbEntry.Email)
		require.Equal(t, entryJane.Phone, dbEntry.Phone)
		require.Equal(t, entryJane.Status, dbEntry.Status)
		require.False(t, dbEntry.Disabled, "new entries must not be suppressed")
	}

	t.Logf("suppress entry %s", entryTom.ID)
	{
		found, err := entryRps.SetDisabled(ctx, entryTom.ID, true)
		require.NoError(t, err, "failed to suppress entry")
		require.True(t, found, "entry is in database, but update reported it missing")

		dbEntry, err := entryRps.FindByID(ctx, entryTom.ID)
		require.NoError(t, err, "failed to read entry")
		require.NotNil(t, dbEntry, "entry was created, but not found in database")
		require.True(t, dbEntry.Disabled, "entry was suppressed, but flag is not set")
	}

	t.Log("suppress unknown entry")
	{
		found, err := entryRps.SetDisabled(ctx, "64bd6c41-874b-4fd7-8a2e-9c47f1b65f0e", true)
		require.NoError(t, err, "unknown id must not raise an error")
		require.False(t, found, "unknown id must be reported missing")
	}

	t.Logf("delete entries %s and %s", entryJane.ID, entryAnn.ID)
	{
		deleted, err := entryRps.DeleteByIDs(ctx, []string{entryJane.ID, entryAnn.ID})
		require.NoError(t, err, "failed to delete entries")
		require.Equal(t, int64(2), deleted, "2 entries must be deleted, but got %d", deleted)
	}

	t.Log("verify remaining entry moved to the head of the list")
	{
		dbEntries, err := entryRps.FindAll(ctx)
		require.NoError(t, err, "failed to read entries")
		require.Len(t, dbEntries, 1, "1 entry must be left, but got %d", len(dbEntries))
		require.Equal(t, entryTom.ID, dbEntries[0].ID, "remaining entry must keep its identity")
	}

	t.Log("delete entries with already deleted ids")
	{
		deleted, err := entryRps.DeleteByIDs(ctx, []string{entryJane.ID, entryTom.ID})
		require.NoError(t, err, "failed to delete entries")
		require.Equal(t, int64(1), deleted, "1 entry must be deleted, but got %d", deleted)
	}

	t.Log("verify watchlist is empty")
	{
		dbEntries, err := entryRps.FindAll(ctx)
		require.NoError(t, err, "failed to read entries")
		require.Empty(t, dbEntries, "watchlist must be empty, but got %d entries", len(dbEntries))
	}
}
