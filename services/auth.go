package services

import (
	"database/sql"
	"fmt"

	"mybooks/database"
	"mybooks/models"
	"mybooks/password"
)

// AuthenticateUser resolves an email+password pair to a user record.
// Unknown email and wrong password both return ErrInvalidCredentials.
func AuthenticateUser(email, plain string) (*models.User, error) {
	var user models.User
	err := database.DB.QueryRow(
		"SELECT id, email, name, password_hash, is_admin, created_at FROM users WHERE email = $1",
		email,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !password.Verify(user.PasswordHash, plain) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// RegisterUser hashes the password and inserts a new user. A taken email
// surfaces as ErrDuplicate.
func RegisterUser(email, name, plain string) (*models.User, error) {
	hashed, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
	}
	err = database.DB.QueryRow(
		"INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3) RETURNING id",
		email, name, hashed,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}

func UpdateUserName(userID int64, name string) error {
	result, err := database.DB.Exec(
		"UPDATE users SET name = $1 WHERE id = $2",
		name, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
