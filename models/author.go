package models

type Author struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	IsDeleted bool   `db:"is_deleted"`
}
