package models

import "time"

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// Identity is the minimal projection of a user carried in the session.
// It is restored verbatim on each request, without a store lookup.
type Identity struct {
	ID      int64
	Name    string
	IsAdmin bool
}
