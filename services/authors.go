package services

import (
	"database/sql"
	"fmt"

	"mybooks/database"
	"mybooks/models"
)

func CreateAuthor(name string) (*models.Author, error) {
	var author models.Author
	err := database.DB.QueryRow(
		"INSERT INTO authors (name) VALUES ($1) RETURNING id, name",
		name,
	).Scan(&author.ID, &author.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &author, nil
}

func UpdateAuthor(id int64, name string) (*models.Author, error) {
	var author models.Author
	err := database.DB.QueryRow(
		"UPDATE authors SET name = $1 WHERE id = $2 RETURNING id, name",
		name, id,
	).Scan(&author.ID, &author.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &author, nil
}

// SoftDeleteAuthor hides the author from future queries. Books already
// referencing the author keep resolving its name.
func SoftDeleteAuthor(id int64) error {
	result, err := database.DB.Exec(
		"UPDATE authors SET is_deleted = TRUE WHERE id = $1",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// AuthorExists reports whether the author exists and is not soft-deleted.
func AuthorExists(id int64) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1 AND is_deleted = FALSE)",
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author: %w", err)
	}
	return exists, nil
}
