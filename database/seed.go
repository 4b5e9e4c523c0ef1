package database

import (
	"fmt"

	"mybooks/config"
	"mybooks/password"
)

// SeedAdminUser ensures an administrator account exists so the admin
// surface is reachable on a fresh database. Skipped when ADMIN_PASSWORD
// is unset.
func SeedAdminUser(cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", cfg.AdminEmail).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}

	if count > 0 {
		// Admin user already exists, skip seeding
		return nil
	}

	hashed, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = DB.Exec(
		"INSERT INTO users (email, name, password_hash, is_admin) VALUES ($1, $2, $3, $4)",
		cfg.AdminEmail,
		cfg.AdminName,
		hashed,
		true,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
