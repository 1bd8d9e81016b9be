package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/errors"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookFilter narrows a listing by exact field matches. Empty fields are ignored.
type BookFilter struct {
	Author string
	Genre  string
}

// BookSearch matches books case-insensitively by substring. Empty fields are ignored.
type BookSearch struct {
	Author string
	Title  string
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	// Create persists a new book.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a book with its review IDs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByIDForUpdate retrieves a book and locks its row until the surrounding transaction ends.
	// It serializes review mutations on the same book.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// List returns one page of books matching filter and the total number of matches.
	List(ctx context.Context, filter BookFilter, offset, limit int) ([]*entity.Book, int64, error)

	// Search returns every book matching the search terms.
	Search(ctx context.Context, search BookSearch) ([]*entity.Book, error)

	// UpdateRating writes the cached average rating of a book.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
}
