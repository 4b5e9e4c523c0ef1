package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"mybooks/models"
	"mybooks/services"
	"mybooks/validation"
)

type partyRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

type partyJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createBookRequest struct {
	ISBN             *int64 `json:"isbn"`
	Title            string `json:"title"`
	AuthorID         *int64 `json:"authorId"`
	PublisherID      *int64 `json:"publisherId"`
	PublicationYear  *int   `json:"publicationYear"`
	PublicationMonth *int   `json:"publicationMonth"`
}

func CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Require("name", req.Name, msgAuthorNameRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	author, err := services.CreateAuthor(req.Name)
	if err != nil {
		slog.Error("author creation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, map[string]partyJSON{
		"author": {ID: author.ID, Name: author.Name},
	})
}

func UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Present("id", req.ID != nil, msgAuthorIDRequired).
		Require("name", req.Name, msgAuthorNameRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	author, err := services.UpdateAuthor(*req.ID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, messageBody{Message: msgAuthorNotFound})
			return
		}
		slog.Error("author update failed", "author_id", *req.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, map[string]partyJSON{
		"author": {ID: author.ID, Name: author.Name},
	})
}

func DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Present("id", req.ID != nil, msgAuthorIDRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	if err := services.SoftDeleteAuthor(*req.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, messageBody{Message: msgAuthorNotFound})
			return
		}
		slog.Error("author deletion failed", "author_id", *req.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: msgAuthorDeleted})
}

func CreatePublisher(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Require("name", req.Name, msgPublisherNameRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	publisher, err := services.CreatePublisher(req.Name)
	if err != nil {
		slog.Error("publisher creation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, map[string]partyJSON{
		"publisher": {ID: publisher.ID, Name: publisher.Name},
	})
}

func UpdatePublisher(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Present("id", req.ID != nil, msgPublisherIDRequired).
		Require("name", req.Name, msgPublisherNameRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	publisher, err := services.UpdatePublisher(*req.ID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, messageBody{Message: msgPublisherNotFound})
			return
		}
		slog.Error("publisher update failed", "publisher_id", *req.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	// Response key stays "author" for compatibility with existing clients.
	writeJSON(w, http.StatusOK, map[string]partyJSON{
		"author": {ID: publisher.ID, Name: publisher.Name},
	})
}

func DeletePublisher(w http.ResponseWriter, r *http.Request) {
	var req partyRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Present("id", req.ID != nil, msgPublisherIDRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	if err := services.SoftDeletePublisher(*req.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, messageBody{Message: msgPublisherNotFound})
			return
		}
		slog.Error("publisher deletion failed", "publisher_id", *req.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: msgPublisherDeleted})
}

// CreateBook validates the referenced author and publisher before the
// insert. The existence checks and the insert are separate statements,
// so a concurrent writer can in principle still win the isbn; the
// unique constraint catches that case.
func CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Present("isbn", req.ISBN != nil, msgISBNRequired).
		Require("title", req.Title, msgTitleRequired).
		Present("authorId", req.AuthorID != nil, msgAuthorIDRequired).
		Present("publisherId", req.PublisherID != nil, msgPublisherIDRequired).
		Present("publicationYear", req.PublicationYear != nil, msgYearRequired).
		Present("publicationMonth", req.PublicationMonth != nil, msgMonthRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: firstErr.Message})
		return
	}

	taken, err := services.ISBNExists(*req.ISBN)
	if err != nil {
		slog.Error("isbn check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}
	if taken {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: msgISBNTaken})
		return
	}

	authorOK, err := services.AuthorExists(*req.AuthorID)
	if err != nil {
		slog.Error("author check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}
	if !authorOK {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: msgInvalidAuthor})
		return
	}

	publisherOK, err := services.PublisherExists(*req.PublisherID)
	if err != nil {
		slog.Error("publisher check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}
	if !publisherOK {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: msgInvalidPublisher})
		return
	}

	book := models.Book{
		ISBN:             *req.ISBN,
		Title:            req.Title,
		AuthorID:         *req.AuthorID,
		PublisherID:      *req.PublisherID,
		PublicationYear:  *req.PublicationYear,
		PublicationMonth: *req.PublicationMonth,
	}
	if err := services.CreateBook(book); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			writeJSON(w, http.StatusBadRequest, messageBody{Message: msgISBNTaken})
			return
		}
		slog.Error("book creation failed", "isbn", book.ISBN, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: msgBookCreated})
}
