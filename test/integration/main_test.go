package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"careercenter_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает общий тестовый сервер (создает при первом вызове).
// Без DATABASE_URL сервер работает в деградированном режиме, и тесты,
// которым нужна база, пропускаются через RequireDB.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		os.Setenv("SERVER_ENV", "test")

		log.Println("--- [GetTestServer] Запуск тестового сервера... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Тестовый сервер готов ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Остановка тестового сервера... ---")
		globalTestServer.Close()
	}

	os.Exit(code)
}
