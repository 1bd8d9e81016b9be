package handler

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/api/middleware"
	"bookshelf/internal/delivery/api/response"
	"bookshelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves the review endpoints. Every route acts on the caller's own review.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddReviewRequest represents the request body for reviewing a book.
type AddReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

// UpdateReviewRequest represents a partial review update; omitted fields are kept.
type UpdateReviewRequest struct {
	Rating     *int    `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

// ReviewMutationResponse is returned after a review is added or updated.
type ReviewMutationResponse struct {
	Message       string          `json:"message"`
	Review        *ReviewResponse `json:"review"`
	AverageRating float64         `json:"averageRating"`
}

// ReviewDeletedResponse is returned after a review is deleted.
type ReviewDeletedResponse struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"averageRating"`
}

// AddReview reviews the book named by the id query parameter.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	bookID, err := parseBookID(c.QueryParam("id"), "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	output, err := h.reviewUC.AddReview(c.Request().Context(), &usecase.AddReviewInput{
		BookID:     bookID,
		UserID:     userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ReviewMutationResponse{
		Message:       "Review added successfully",
		Review:        toReviewResponse(output.Review),
		AverageRating: output.AverageRating,
	})
}

// UpdateReview changes the caller's review of the book in the path.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	bookID, err := parseBookID(c.Param("id"), "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	output, err := h.reviewUC.UpdateReview(c.Request().Context(), &usecase.UpdateReviewInput{
		BookID:     bookID,
		UserID:     userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReviewMutationResponse{
		Message:       "Review updated successfully",
		Review:        toReviewResponse(output.Review),
		AverageRating: output.AverageRating,
	})
}

// DeleteReview removes the caller's review of the book in the path.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	bookID, err := parseBookID(c.Param("id"), "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.reviewUC.DeleteReview(c.Request().Context(), &usecase.DeleteReviewInput{
		BookID: bookID,
		UserID: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReviewDeletedResponse{
		Message:       "Review deleted successfully",
		AverageRating: output.AverageRating,
	})
}
