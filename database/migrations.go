package database

import (
	"fmt"
)

func RunMigrations() error {
	usersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := DB.Exec(usersTableSQL)
	if err != nil {
		return fmt.Errorf("failed to run users migration: %w", err)
	}

	authorsTableSQL := `
	CREATE TABLE IF NOT EXISTS authors (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		is_deleted BOOLEAN DEFAULT FALSE
	);
	`
	_, err = DB.Exec(authorsTableSQL)
	if err != nil {
		return fmt.Errorf("failed to run authors migration: %w", err)
	}

	publishersTableSQL := `
	CREATE TABLE IF NOT EXISTS publishers (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		is_deleted BOOLEAN DEFAULT FALSE
	);
	`
	_, err = DB.Exec(publishersTableSQL)
	if err != nil {
		return fmt.Errorf("failed to run publishers migration: %w", err)
	}

	booksTableSQL := `
	CREATE TABLE IF NOT EXISTS books (
		isbn BIGINT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		author_id INTEGER NOT NULL REFERENCES authors(id),
		publisher_id INTEGER NOT NULL REFERENCES publishers(id),
		publication_year INTEGER NOT NULL,
		publication_month INTEGER NOT NULL,
		is_deleted BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Migration for older books tables that predate soft deletes
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name='books' AND column_name='is_deleted') THEN
			ALTER TABLE books ADD COLUMN is_deleted BOOLEAN DEFAULT FALSE;
		END IF;
	END $$;
	`
	_, err = DB.Exec(booksTableSQL)
	if err != nil {
		return fmt.Errorf("failed to run books migration: %w", err)
	}

	return nil
}
