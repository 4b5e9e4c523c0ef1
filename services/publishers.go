package services

import (
	"database/sql"
	"fmt"

	"mybooks/database"
	"mybooks/models"
)

func CreatePublisher(name string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := database.DB.QueryRow(
		"INSERT INTO publishers (name) VALUES ($1) RETURNING id, name",
		name,
	).Scan(&publisher.ID, &publisher.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}
	return &publisher, nil
}

func UpdatePublisher(id int64, name string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := database.DB.QueryRow(
		"UPDATE publishers SET name = $1 WHERE id = $2 RETURNING id, name",
		name, id,
	).Scan(&publisher.ID, &publisher.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}
	return &publisher, nil
}

func SoftDeletePublisher(id int64) error {
	result, err := database.DB.Exec(
		"UPDATE publishers SET is_deleted = TRUE WHERE id = $1",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
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

// PublisherExists reports whether the publisher exists and is not soft-deleted.
func PublisherExists(id int64) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM publishers WHERE id = $1 AND is_deleted = FALSE)",
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check publisher: %w", err)
	}
	return exists, nil
}
