package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mybooks/config"
	"mybooks/database"
	"mybooks/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// setupTest swaps in a sqlmock connection and a fresh session store.
func setupTest(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	database.DB = db

	services.InitSessionStore(&config.Config{
		SessionSecret: "test-secret",
		Environment:   "test",
	})
	return mock
}

// sessionCookie fabricates a logged-in session cookie the way a real
// login would store it.
func sessionCookie(t *testing.T, id int64, name string, isAdmin bool) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	session, err := services.GetSession(req)
	require.NoError(t, err)
	session.Values["user_id"] = id
	session.Values["user_name"] = name
	session.Values["is_admin"] = isAdmin
	require.NoError(t, services.SaveSession(rec, req, session))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

// doRequest runs a request through the full router wiring.
func doRequest(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
