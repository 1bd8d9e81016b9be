package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalogued title. Rating and ReviewIDs are derived from the book's reviews
// and are only ever written by the review workflow.
type Book struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Genre     string
	Summary   string
	AddedBy   uuid.UUID   // ID of the user who catalogued the book.
	Rating    float64     // Cached mean of the review ratings.
	ReviewIDs []uuid.UUID // Review IDs in creation order.
	AddDate   time.Time
	UpdatedAt time.Time
}

// NewBook builds a book that has never been reviewed.
func NewBook(title, author, genre, summary string, addedBy uuid.UUID) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		Genre:     genre,
		Summary:   summary,
		AddedBy:   addedBy,
		Rating:    DefaultBookRating,
		ReviewIDs: []uuid.UUID{},
	}
}
