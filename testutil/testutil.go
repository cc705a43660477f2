// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/db"
)

// TestDBURLEnv selects a PostgreSQL test database instead of a temporary
// sqlite file when set
const TestDBURLEnv = "TEST_DATABASE_URL"

// TestAdminKey is the admin key in GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if cfg.DatabaseType == cliparse.DatabasePostgres {
		// Clean up tables before each test
		_, err = conn.Exec(`
			DROP TABLE IF EXISTS choice CASCADE;
			DROP TABLE IF EXISTS question CASCADE;
		`)
		if err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	cfg := cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKey:     TestAdminKey,
		ListingLimit: cliparse.DefaultListingLimit,
	}

	if pgURL := os.Getenv(TestDBURLEnv); pgURL != "" {
		cfg.DatabaseType = cliparse.DatabasePostgres
		cfg.DatabaseURL = pgURL
	} else {
		cfg.DatabaseURL = filepath.Join(t.TempDir(), "polls.db")
	}

	return cfg
}

// CreateTestQuestion creates a question published the given number of days
// from now (negative for the past) and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days int) int64 {
	t.Helper()

	pubDate := time.Now().UTC().AddDate(0, 0, days)

	var id int64
	err := conn.QueryRow(`
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, pubDate).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// AddTestChoice adds a choice with zero votes and returns its ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID int64, text string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return id
}

// CreateTestQuestionAndChoice creates a question with a single choice, since
// questions without choices never appear in the listing. An empty choiceText
// becomes "<text> -- choice".
func CreateTestQuestionAndChoice(t *testing.T, conn *sql.DB, text string, days int, choiceText string) (questionID, choiceID int64) {
	t.Helper()

	if choiceText == "" {
		choiceText = text + " -- choice"
	}

	questionID = CreateTestQuestion(t, conn, text, days)
	choiceID = AddTestChoice(t, conn, questionID, choiceText)
	return questionID, choiceID
}

// GetVotes reads a choice's counter directly
func GetVotes(t *testing.T, conn *sql.DB, choiceID int64) int64 {
	t.Helper()

	var votes int64
	if err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}

	return votes
}

// MakeRequest creates an HTTP test request with a JSON body
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

// MakeFormRequest creates an HTTP test request with a urlencoded form body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertNotContains checks that the response body does not contain text
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body not to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
