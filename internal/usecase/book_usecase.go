package usecase

import (
	"context"
	"math"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// Pagination defaults applied to missing or non-positive values.
const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxOffset caps how far into a listing a page may start.
	MaxOffset = math.MaxInt32
)

// AddBookInput defines the data required to catalogue a book.
type AddBookInput struct {
	Title   string
	Author  string
	Genre   string
	Summary string
	AddedBy uuid.UUID
}

// PageInput selects one page of a listing. Values below 1 fall back to the defaults.
type PageInput struct {
	Page  int
	Limit int
}

// Normalize returns a copy with the defaults applied.
func (p PageInput) Normalize() PageInput {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	// Pages past MaxOffset are all empty; clamping keeps Offset from overflowing.
	if maxPage := MaxOffset/p.Limit + 1; p.Page > maxPage {
		p.Page = maxPage
	}

	return p
}

// Offset is the number of items preceding the page.
func (p PageInput) Offset() int {
	return (p.Page - 1) * p.Limit
}

// FilterBooksInput narrows a listing by exact author and/or genre.
type FilterBooksInput struct {
	Author string
	Genre  string
	PageInput
}

// SearchBooksInput matches author and/or title case-insensitively. At least one is required.
type SearchBooksInput struct {
	Author string
	Title  string
}

// BookPage is one page of books with the totals needed to render pagination.
type BookPage struct {
	Books []*entity.Book
	Total int64
	Page  int
	Pages int
}

// NewBookPage computes the page count for a listing.
func NewBookPage(books []*entity.Book, total int64, page PageInput) *BookPage {
	return &BookPage{
		Books: books,
		Total: total,
		Page:  page.Page,
		Pages: int(math.Ceil(float64(total) / float64(page.Limit))),
	}
}

// BookUsecase defines catalogue operations.
type BookUsecase interface {
	AddBook(ctx context.Context, input *AddBookInput) (*entity.Book, error)
	ListBooks(ctx context.Context, page PageInput) (*BookPage, error)
	FilterBooks(ctx context.Context, input *FilterBooksInput) (*BookPage, error)
	SearchBooks(ctx context.Context, input *SearchBooksInput) ([]*entity.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
}
