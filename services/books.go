package services

import (
	"fmt"

	"mybooks/database"
	"mybooks/models"
)

// BooksPerPage is the fixed page size of the book listing.
const BooksPerPage = 5

// BookListItem is one row of the paginated listing, with the author name
// already joined in. Soft-deleted authors still resolve here: deletion
// only hides them from new book creation.
type BookListItem struct {
	ISBN             int64
	Title            string
	AuthorName       string
	PublicationYear  int
	PublicationMonth int
}

// ListBooks returns one page of non-deleted books, most recent first,
// plus the total count for computing the last page.
func ListBooks(page int) ([]BookListItem, int, error) {
	offset := (page - 1) * BooksPerPage

	rows, err := database.DB.Query(
		`SELECT b.isbn, b.title, a.name, b.publication_year, b.publication_month
		 FROM books b
		 JOIN authors a ON a.id = b.author_id
		 WHERE b.is_deleted = FALSE
		 ORDER BY b.publication_year DESC, b.publication_month DESC
		 LIMIT $1 OFFSET $2`,
		BooksPerPage, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []BookListItem
	for rows.Next() {
		var b BookListItem
		if err := rows.Scan(&b.ISBN, &b.Title, &b.AuthorName, &b.PublicationYear, &b.PublicationMonth); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read books: %w", err)
	}

	var count int
	err = database.DB.QueryRow(
		"SELECT COUNT(*) FROM books WHERE is_deleted = FALSE",
	).Scan(&count)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, count, nil
}

func CreateBook(book models.Book) error {
	_, err := database.DB.Exec(
		`INSERT INTO books (isbn, title, author_id, publisher_id, publication_year, publication_month)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		book.ISBN, book.Title, book.AuthorID, book.PublisherID,
		book.PublicationYear, book.PublicationMonth,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// ISBNExists checks against every book row, soft-deleted ones included,
// since the ISBN stays taken after a deletion.
func ISBNExists(isbn int64) (bool, error) {
	var exists bool
	err := database.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)",
		isbn,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check isbn: %w", err)
	}
	return exists, nil
}
