package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"flexygig/database"
	"flexygig/internal/app"
	"flexygig/internal/config"
	"flexygig/internal/workers"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer - поднятый httptest-сервер поверх реальной (тестовой) БД
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Mailer *workers.Mailer
}

// NewTestServer подключается к тестовой БД (DATABASE_URL), прогоняет
// миграции и поднимает полный роутер. SMTP заменен на мок.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	mailer := workers.NewMailer(&app.MockEmailProvider{}, 16)
	router := app.SetupRouter(cfg, db, mailer)
	server := httptest.NewServer(router)

	log.Printf("Тестовый сервер запущен, тестовая БД (%s) настроена.", dsn)

	return &TestServer{
		Server: server,
		DB:     db,
		Mailer: mailer,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.Mailer.Stop()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables очищает все таблицы с данными. Справочники тегов
// (skills/traits/experiences) не трогаем - их заполняет сид миграции.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec("TRUNCATE TABLE users, workers, businesses, pending_users, verification_tokens, messages, locations, workers_skills, workers_traits, workers_experiences RESTART IDENTITY CASCADE").Error
	if err != nil {
		log.Fatalf("Не удалось очистить таблицы: %v", err)
	}
}

// SendRequest шлет JSON-запрос на тестовый сервер и возвращает ответ + тело
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
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

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
