package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the (book, user) uniqueness constraint rejects a write.
	ErrDuplicateReview = errors.New("review already exists for this book and user")
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when the user already reviewed the book.
	Create(ctx context.Context, review *entity.Review) error

	// FindByBookAndUser retrieves the unique review a user wrote for a book.
	FindByBookAndUser(ctx context.Context, bookID, userID uuid.UUID) (*entity.Review, error)

	// Update writes the rating and text of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListRatingsByBook returns the ratings of every review currently attached to a book.
	ListRatingsByBook(ctx context.Context, bookID uuid.UUID) ([]int, error)
}
