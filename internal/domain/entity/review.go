package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's rating and commentary for one book.
// At most one review exists per (BookID, UserID).
type Review struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	UserID     uuid.UUID // Owner; the only user allowed to change or delete the review.
	Rating     int
	ReviewText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether the given user wrote the review.
func (r *Review) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// ReviewPatch carries a partial update; nil fields keep their current value.
type ReviewPatch struct {
	Rating     *int
	ReviewText *string
}

// Apply copies the supplied fields onto the review.
func (p ReviewPatch) Apply(r *Review) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.ReviewText != nil {
		r.ReviewText = *p.ReviewText
	}
}
