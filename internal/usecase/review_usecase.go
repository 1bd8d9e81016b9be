package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput defines a user's first review of a book.
type AddReviewInput struct {
	BookID     uuid.UUID
	UserID     uuid.UUID
	Rating     int
	ReviewText string
}

// UpdateReviewInput changes the acting user's review of a book. Nil fields are left unchanged.
type UpdateReviewInput struct {
	BookID     uuid.UUID
	UserID     uuid.UUID
	Rating     *int
	ReviewText *string
}

// DeleteReviewInput removes the acting user's review of a book.
type DeleteReviewInput struct {
	BookID uuid.UUID
	UserID uuid.UUID
}

// ReviewOutput carries the affected review and the book's recomputed average.
// Review is nil after a delete.
type ReviewOutput struct {
	Review        *entity.Review
	AverageRating float64
}

// ReviewUsecase defines the review workflow. Every operation keeps the book's
// cached rating equal to the mean of its current reviews.
type ReviewUsecase interface {
	AddReview(ctx context.Context, input *AddReviewInput) (*ReviewOutput, error)
	UpdateReview(ctx context.Context, input *UpdateReviewInput) (*ReviewOutput, error)
	DeleteReview(ctx context.Context, input *DeleteReviewInput) (*ReviewOutput, error)
}
