package handler

import (
	"time"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// BookResponse is the JSON view of a book.
type BookResponse struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Author    string      `json:"author"`
	Genre     string      `json:"genre"`
	Summary   string      `json:"summary"`
	AddedBy   uuid.UUID   `json:"addedBy"`
	Rating    float64     `json:"rating"`
	Reviews   []uuid.UUID `json:"reviews"`
	AddDate   time.Time   `json:"addDate"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ReviewResponse is the JSON view of a review.
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	BookID     uuid.UUID `json:"bookId"`
	UserID     uuid.UUID `json:"userId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toBookResponse(book *entity.Book) *BookResponse {
	reviews := book.ReviewIDs
	if reviews == nil {
		reviews = []uuid.UUID{}
	}

	return &BookResponse{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Genre:     book.Genre,
		Summary:   book.Summary,
		AddedBy:   book.AddedBy,
		Rating:    book.Rating,
		Reviews:   reviews,
		AddDate:   book.AddDate,
		UpdatedAt: book.UpdatedAt,
	}
}

func toBookResponses(books []*entity.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, toBookResponse(book))
	}

	return out
}

func toReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         review.ID,
		BookID:     review.BookID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
