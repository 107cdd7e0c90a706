package integration_test

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"jobboard_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает тестовый сервер (создает при первом вызове).
// БД - sqlite-файл во временной директории.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "jobboard-test")
		if err != nil {
			t.Fatalf("Failed to create temp dir: %v", err)
		}

		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("DATABASE_URL", filepath.Join(tmpDir, "test.db"))
		os.Setenv("DATABASE_DRIVER", "sqlite")
		os.Setenv("JWT_SECRET", "my_super_secret_key_for_tests_12345")
		// Лимитер логина не должен мешать тестам
		os.Setenv("LOGIN_RATE_PER_MIN", "100000")
		os.Setenv("LOGIN_BURST", "100000")

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})

	// Каждый тест начинает с чистых таблиц
	globalTestServer.ClearTables(t)
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
