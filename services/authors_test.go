package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthor(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO authors").
		WithArgs("夏目漱石").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "夏目漱石"))

	author, err := CreateAuthor("夏目漱石")
	require.NoError(t, err)
	assert.Equal(t, int64(1), author.ID)
	assert.Equal(t, "夏目漱石", author.Name)
}

func TestUpdateAuthorNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("UPDATE authors SET name").
		WithArgs("新しい名前", int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := UpdateAuthor(42, "新しい名前")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeleteAuthorMarksRow(t *testing.T) {
	mock := newMockDB(t)
	// Delete is an UPDATE of is_deleted, never a DELETE statement.
	mock.ExpectExec("UPDATE authors SET is_deleted = TRUE").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, SoftDeleteAuthor(1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteAuthorNotFound(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectExec("UPDATE authors SET is_deleted = TRUE").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, SoftDeleteAuthor(42), ErrNotFound)
}

func TestAuthorExistsExcludesSoftDeleted(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := AuthorExists(1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPublisherLifecycle(t *testing.T) {
	mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO publishers").
		WithArgs("岩波書店").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "岩波書店"))
	mock.ExpectQuery("UPDATE publishers SET name").
		WithArgs("岩波", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "岩波"))
	mock.ExpectExec("UPDATE publishers SET is_deleted = TRUE").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	publisher, err := CreatePublisher("岩波書店")
	require.NoError(t, err)
	assert.Equal(t, int64(3), publisher.ID)

	updated, err := UpdatePublisher(3, "岩波")
	require.NoError(t, err)
	assert.Equal(t, "岩波", updated.Name)

	require.NoError(t, SoftDeletePublisher(3))
	require.NoError(t, mock.ExpectationsWereMet())
}
