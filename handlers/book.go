package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"mybooks/services"

	"github.com/go-chi/chi/v5"
)

type bookAuthorJSON struct {
	Name string `json:"name"`
}

type bookJSON struct {
	// ISBN goes out as a string so large values survive JSON
	// round-trips in every client.
	ISBN                 string         `json:"isbn"`
	Title                string         `json:"title"`
	Author               bookAuthorJSON `json:"author"`
	PublicationYearMonth string         `json:"publication_year_month"`
}

type bookListResponse struct {
	Current  int        `json:"current"`
	LastPage int        `json:"last_page"`
	Books    []bookJSON `json:"books"`
}

// ListBooks serves one page of the catalog, newest publications first.
// A missing or unparseable page falls back to page 1 rather than erroring.
func ListBooks(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil || page < 1 {
		page = 1
	}

	items, count, err := services.ListBooks(page)
	if err != nil {
		slog.Error("book listing failed", "page", page, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	lastPage := (count + services.BooksPerPage - 1) / services.BooksPerPage

	books := make([]bookJSON, 0, len(items))
	for _, item := range items {
		books = append(books, bookJSON{
			ISBN:                 strconv.FormatInt(item.ISBN, 10),
			Title:                item.Title,
			Author:               bookAuthorJSON{Name: item.AuthorName},
			PublicationYearMonth: fmt.Sprintf("%d-%02d", item.PublicationYear, item.PublicationMonth),
		})
	}

	writeJSON(w, http.StatusOK, bookListResponse{
		Current:  page,
		LastPage: lastPage,
		Books:    books,
	})
}
