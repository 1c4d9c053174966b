package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"flexygig/test/helpers"
)

// Интеграционные тесты гоняются против живого postgres:
//
//	DATABASE_URL=postgres://...test?sslmode=disable go test ./test/integration/
//
// Без DATABASE_URL весь пакет скипается.
var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL не задан, интеграционные тесты пропущены")
	}

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		if os.Getenv("SERVER_ENV") == "" {
			os.Setenv("SERVER_ENV", "test")
		}

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.ClearTables()
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}
