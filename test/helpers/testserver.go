package helpers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careercenter_backend/database"
	"careercenter_backend/internal/app"
	"careercenter_backend/internal/config"
)

// TestServer - HTTP-сервер приложения поверх httptest.
// DB равен nil, когда DATABASE_URL не задан: сервер работает
// в деградированном режиме и этого достаточно для части тестов.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer поднимает приложение. LLM в тестах не подключается:
// AI-эндпоинты отвечают фиксированными текстами.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	var gormDB *gorm.DB
	var sqlDB *sql.DB

	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
		}
		gormDB = db

		sqlDB, err = db.DB()
		if err != nil {
			t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
		}

		if err := database.Migrate(sqlDB); err != nil {
			t.Fatalf("Миграции тестовой БД не применились: %v", err)
		}
	} else {
		log.Println("DATABASE_URL не задан: тестовый сервер в деградированном режиме")
	}

	router := app.SetupRouter(cfg, gormDB, sqlDB, nil)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     gormDB,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if ts.DB != nil {
		if sqlDB, err := ts.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// RequireDB пропускает тест, если тестовая БД не настроена
func (ts *TestServer) RequireDB(t *testing.T) {
	t.Helper()
	if ts.DB == nil {
		t.Skip("Тест требует DATABASE_URL")
	}
}

// SendRequest выполняет запрос к тестовому серверу и возвращает
// ответ вместе с прочитанным телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}
