package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Videomania/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	SQLDialect          = "postgres"
	SQLConnectionString = "host=%s user=%s password=%s dbname=%s port=%s sslmode=disable"
	User                = "postgres"
	Password            = "postgres"
	MasterDBName        = "VIDEOMANIA_DB"
)

var sharedDatabase = &databaseManager{Mutex: &sync.Mutex{}}

// databaseManager is an internal test helper which owns a single postgres
// container (spawned lazily via testcontainers) shared by all the tests in
// a package. Each test is provisioned it's own database inside of that
// container so tests can run in parallel without interfering.
type databaseManager struct {
	*sync.Mutex
	pgContainer *postgres.PostgresContainer
	host        string
	port        string
	connection  *sql.DB
}

// NewTestDatabase provisions a fresh, fully migrated database for the
// test and returns a connected database Manager for it. The database
// connection is closed when the test completes.
func NewTestDatabase(t *testing.T) database.Manager {
	config := sharedDatabase.provisionDB(t)

	manager := database.New()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := manager.Connect(ctx, config); err != nil {
		t.Fatalf("failed to connect to provisioned test database %s: %s", config.Name, err)
	}

	t.Cleanup(func() { _ = manager.Close() })
	return manager
}

func (manager *databaseManager) provisionDB(t *testing.T) database.DatabaseConfig {
	manager.Lock()
	defer manager.Unlock()

	if manager.connection == nil {
		t.Log("Database provisioning request received but manager not started yet. Initializing database management...")
		manager.spawnPostgres(t)
		manager.connect(t)
		t.Log("Database management initialised!")
	}

	databaseName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := manager.connection.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, databaseName)); err != nil {
		t.Fatalf("failed to provision database '%s': (%T) %s", databaseName, err, err)
	}

	return database.DatabaseConfig{
		User:     User,
		Password: Password,
		Name:     databaseName,
		Host:     manager.host,
		Port:     manager.port,
		SSLMode:  "disable",
	}
}

func (manager *databaseManager) connect(t *testing.T) {
	dsn := fmt.Sprintf(SQLConnectionString, manager.host, User, Password, MasterDBName, manager.port)
	db, err := sql.Open(SQLDialect, dsn)
	if err != nil {
		t.Fatalf("failed to open postgres connection: %s", err)
	}

	for attempt := 1; ; attempt++ {
		if err := db.Ping(); err == nil {
			break
		} else if attempt == 3 {
			t.Fatalf("all database connection attempts FAILED: %s", err)
		}

		t.Logf("DB connection attempt (%v/3) failed... Retrying in 3s", attempt)
		time.Sleep(3 * time.Second)
	}

	t.Log("Database connection established!")
	manager.connection = db
}

func (manager *databaseManager) spawnPostgres(t *testing.T) {
	ctx := context.Background()
	postgresC, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:14.1-alpine"),
		postgres.WithDatabase(MasterDBName),
		postgres.WithUsername(User),
		postgres.WithPassword(Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start container: %s", err)
	}

	host, err := postgresC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to resolve postgres container host: %s", err)
	}

	port, err := postgresC.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to resolve postgres container port: %s", err)
	}

	manager.pgContainer = postgresC
	manager.host = host
	manager.port = port.Port()
}
