package models

import "time"

// Book is keyed by ISBN. ISBNs are stored numerically but must be
// serialized as strings so clients never lose precision.
type Book struct {
	ISBN             int64     `db:"isbn"`
	Title            string    `db:"title"`
	AuthorID         int64     `db:"author_id"`
	PublisherID      int64     `db:"publisher_id"`
	PublicationYear  int       `db:"publication_year"`
	PublicationMonth int       `db:"publication_month"`
	IsDeleted        bool      `db:"is_deleted"`
	CreatedAt        time.Time `db:"created_at"`
}
