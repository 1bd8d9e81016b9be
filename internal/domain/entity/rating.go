package entity

const (
	// MinRating and MaxRating bound a single review's rating.
	MinRating = 1
	MaxRating = 5

	// DefaultBookRating is the rating of a book that has never been reviewed.
	DefaultBookRating = 3.0

	// EmptyReviewSetRating is the rating written when a book's last review is deleted.
	EmptyReviewSetRating = 0.0
)

// IsValidRating reports whether r is an accepted review rating.
func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// AverageRating returns the unweighted arithmetic mean of ratings with no rounding.
// An empty set yields EmptyReviewSetRating.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return EmptyReviewSetRating
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	return float64(sum) / float64(len(ratings))
}
