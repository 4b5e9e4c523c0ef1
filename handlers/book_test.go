package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"mybooks/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooksRequiresAuth(t *testing.T) {
	setupTest(t)

	rec := doRequest(t, http.MethodGet, "/book/list/1", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "ログインされていません", decodeBody(t, rec)["message"])
}

func TestListBooksOrderingAndShape(t *testing.T) {
	mock := setupTest(t)
	cookie := sessionCookie(t, 1, "alice", false)

	rows := sqlmock.NewRows([]string{"isbn", "title", "name", "publication_year", "publication_month"}).
		AddRow(int64(9784873115658), "2021年3月の本", "著者A", 2021, 3).
		AddRow(int64(9784873115659), "2021年1月の本", "著者A", 2021, 1).
		AddRow(int64(9784873115660), "2020年の本", "著者B", 2020, 5)
	mock.ExpectQuery("SELECT b.isbn, b.title, a.name").
		WithArgs(services.BooksPerPage, 0).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rec := doRequest(t, http.MethodGet, "/book/list/1", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Current  int `json:"current"`
		LastPage int `json:"last_page"`
		Books    []struct {
			ISBN   string `json:"isbn"`
			Title  string `json:"title"`
			Author struct {
				Name string `json:"name"`
			} `json:"author"`
			PublicationYearMonth string `json:"publication_year_month"`
		} `json:"books"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Current)
	assert.Equal(t, 1, body.LastPage)
	require.Len(t, body.Books, 3)

	// Month 3 sorts before month 1 within 2021, both before 2020.
	assert.Equal(t, "2021-03", body.Books[0].PublicationYearMonth)
	assert.Equal(t, "2021-01", body.Books[1].PublicationYearMonth)
	assert.Equal(t, "2020-05", body.Books[2].PublicationYearMonth)

	// ISBN round-trips as a string without precision loss.
	assert.Equal(t, "9784873115658", body.Books[0].ISBN)
	assert.Equal(t, "著者A", body.Books[0].Author.Name)
}

func TestListBooksPageBeyondLast(t *testing.T) {
	mock := setupTest(t)
	cookie := sessionCookie(t, 1, "alice", false)

	mock.ExpectQuery("SELECT b.isbn, b.title, a.name").
		WithArgs(services.BooksPerPage, 490).
		WillReturnRows(sqlmock.NewRows([]string{"isbn", "title", "name", "publication_year", "publication_month"}))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rec := doRequest(t, http.MethodGet, "/book/list/99", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(99), body["current"])
	assert.Equal(t, float64(2), body["last_page"])
	books, ok := body["books"].([]any)
	require.True(t, ok, "books must be an array, got %T", body["books"])
	assert.Empty(t, books)
}

func TestListBooksInvalidPageFallsBackToOne(t *testing.T) {
	mock := setupTest(t)
	cookie := sessionCookie(t, 1, "alice", false)

	for _, path := range []string{"/book/list/abc", "/book/list/-3", "/book/list"} {
		mock.ExpectQuery("SELECT b.isbn, b.title, a.name").
			WithArgs(services.BooksPerPage, 0).
			WillReturnRows(sqlmock.NewRows([]string{"isbn", "title", "name", "publication_year", "publication_month"}))
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		rec := doRequest(t, http.MethodGet, path, nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, float64(1), decodeBody(t, rec)["current"], path)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}
