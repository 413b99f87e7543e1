package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Shared database credentials for container-backed tests
const (
	TestDBName     = "testdb"
	TestDBUser     = "testuser"
	TestDBPassword = "testpass"
)

// DBContainer is a disposable database for integration tests
type DBContainer struct {
	Container testcontainers.Container
	Network   *testcontainers.DockerNetwork
	Host      string
	Port      string
}

// Terminate tears the container and its network down
func (c *DBContainer) Terminate(t *testing.T) {
	ctx := context.Background()
	if c.Container != nil {
		if err := c.Container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate database container: %v", err)
		}
	}
	if c.Network != nil {
		if err := c.Network.Remove(ctx); err != nil {
			t.Logf("Failed to remove network: %v", err)
		}
	}
}

// RequireDocker skips the test when no Docker daemon is reachable
func RequireDocker(t *testing.T) {
	t.Helper()

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		t.Skipf("Docker client unavailable: %v", err)
	}
	defer cli.Close()

	if _, err := cli.Ping(context.Background()); err != nil {
		t.Skipf("Docker daemon unreachable: %v", err)
	}
}

// StartMariaDB starts a MariaDB container and waits until it accepts
// SQL connections
func StartMariaDB(t *testing.T) *DBContainer {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	if err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        getEnv("DB_IMAGE", "mariadb:11.4"),
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      TestDBName,
				"MYSQL_USER":          TestDBUser,
				"MYSQL_PASSWORD":      TestDBPassword,
			},
			Networks:   []string{nw.Name},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		_ = nw.Remove(ctx)
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}

	db := &DBContainer{Container: container, Network: nw}
	db.Host, err = container.Host(ctx)
	if err != nil {
		db.Terminate(t)
		t.Fatalf("Failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		db.Terminate(t)
		t.Fatalf("Failed to get container port: %v", err)
	}
	db.Port = mapped.Port()

	// The port opens before the server finishes initializing
	if err := waitForMySQL(db.Host, db.Port); err != nil {
		db.Terminate(t)
		t.Fatalf("MariaDB never became ready: %v", err)
	}

	return db
}

// StartPostgres starts a PostgreSQL container
func StartPostgres(t *testing.T) *DBContainer {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	if err != nil {
		t.Fatalf("Failed to create network: %v", err)
	}

	tcpPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		t.Fatalf("Failed to create port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        getEnv("POSTGRES_IMAGE", "postgres:17-alpine"),
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"POSTGRES_DB":       TestDBName,
				"POSTGRES_USER":     TestDBUser,
				"POSTGRES_PASSWORD": TestDBPassword,
			},
			Networks: []string{nw.Name},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		_ = nw.Remove(ctx)
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	db := &DBContainer{Container: container, Network: nw}
	db.Host, err = container.Host(ctx)
	if err != nil {
		db.Terminate(t)
		t.Fatalf("Failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		db.Terminate(t)
		t.Fatalf("Failed to get container port: %v", err)
	}
	db.Port = mapped.Port()

	return db
}

func waitForMySQL(host, port string) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", TestDBUser, TestDBPassword, host, port, TestDBName)

	var lastErr error
	for i := 0; i < 30; i++ {
		conn, err := sql.Open("mysql", dsn)
		if err == nil {
			lastErr = conn.Ping()
			conn.Close()
			if lastErr == nil {
				return nil
			}
		} else {
			lastErr = err
		}
		time.Sleep(2 * time.Second)
	}
	return lastErr
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
