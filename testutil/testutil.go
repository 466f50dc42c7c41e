// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-post/db"
	"github.com/danielhkuo/quickly-post/models"
	"github.com/danielhkuo/quickly-post/store"
)

// TestDBURLEnv names the variable holding a postgres URL for the postgres suites
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupPostgresDB connects to TEST_DATABASE_URL and recreates the schema.
// The test is skipped when the variable is unset.
func SetupPostgresDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(TestDBURLEnv)
	if url == "" {
		t.Skipf("%s not set", TestDBURLEnv)
	}

	conn, err := db.Open(db.Postgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if _, err := conn.Exec(`DROP TABLE IF EXISTS messages CASCADE`); err != nil {
		conn.Close()
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh sqlite database, closed when the test ends
func SetupTestStore(t *testing.T) (*sql.DB, *store.SQLStore) {
	t.Helper()

	conn := SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	return conn, store.NewSQLStore(conn, db.SQLite)
}

// CreateTestMessage inserts a message directly and returns its id
func CreateTestMessage(t *testing.T, conn *sql.DB, body, username string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO messages (body, username, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`, body, username, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test message: %v", err)
	}

	return id
}

// CountMessages returns the number of rows in the messages table
func CountMessages(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count); err != nil {
		t.Fatalf("Failed to count messages: %v", err)
	}

	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
	}
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status code and the {"error": ...} envelope
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Error != message {
		t.Errorf("Expected error '%s', got '%s'", message, resp.Error)
	}
}
