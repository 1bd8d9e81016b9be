package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Operation labels reported to ReviewMetrics.
const (
	reviewOpAdd    = "add"
	reviewOpUpdate = "update"
	reviewOpDelete = "delete"
)

// reviewService implements the ReviewUsecase interface.
// Each mutation runs in one transaction holding the book's row lock, and rewrites the
// cached rating from the review set before committing.
type reviewService struct {
	txManager repository.TransactionManager
	metrics   service.ReviewMetrics
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.ReviewMetrics `optional:"true"`
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview creates the user's only review of a book and returns the new average.
func (srv *reviewService) AddReview(ctx context.Context, input *usecase.AddReviewInput) (*usecase.ReviewOutput, error) {
	if err := validateNewReview(input); err != nil {
		return nil, err
	}

	var output *usecase.ReviewOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := lockBook(ctx, bookRepo, input.BookID); err != nil {
			return err
		}

		_, err := reviewRepo.FindByBookAndUser(ctx, input.BookID, input.UserID)
		if err == nil {
			return domainerrors.ErrDuplicateReview
		}
		if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check existing review")
		}

		review := &entity.Review{
			BookID:     input.BookID,
			UserID:     input.UserID,
			Rating:     input.Rating,
			ReviewText: input.ReviewText,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			// Lost a race against a concurrent add by the same user.
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		avg, err := recomputeRating(ctx, bookRepo, reviewRepo, input.BookID)
		if err != nil {
			return err
		}

		output = &usecase.ReviewOutput{Review: review, AverageRating: avg}

		return nil
	})
	srv.observe(reviewOpAdd, err)
	if err != nil {
		srv.log(ctx).Warn("Failed to add review", slog.Any("bookID", input.BookID), slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add review")
	}

	srv.log(ctx).Info("Review added",
		slog.Any("bookID", input.BookID),
		slog.Any("reviewID", output.Review.ID),
		slog.Float64("averageRating", output.AverageRating),
	)

	return output, nil
}

// UpdateReview changes the acting user's review of a book and returns the new average.
func (srv *reviewService) UpdateReview(ctx context.Context, input *usecase.UpdateReviewInput) (*usecase.ReviewOutput, error) {
	if input.Rating != nil && !entity.IsValidRating(*input.Rating) {
		return nil, invalidRatingError()
	}
	if input.ReviewText != nil && strings.TrimSpace(*input.ReviewText) == "" {
		return nil, blankReviewTextError()
	}

	var output *usecase.ReviewOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		reviewRepo := repoFactory.ReviewRepo()

		review, err := srv.findOwnedReview(ctx, bookRepo, reviewRepo, input.BookID, input.UserID)
		if err != nil {
			return err
		}

		entity.ReviewPatch{Rating: input.Rating, ReviewText: input.ReviewText}.Apply(review)
		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		avg, err := recomputeRating(ctx, bookRepo, reviewRepo, input.BookID)
		if err != nil {
			return err
		}

		output = &usecase.ReviewOutput{Review: review, AverageRating: avg}

		return nil
	})
	srv.observe(reviewOpUpdate, err)
	if err != nil {
		srv.log(ctx).Warn("Failed to update review", slog.Any("bookID", input.BookID), slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update review")
	}

	return output, nil
}

// DeleteReview removes the acting user's review of a book and returns the new average,
// which is 0 once the last review is gone.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) (*usecase.ReviewOutput, error) {
	var output *usecase.ReviewOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		reviewRepo := repoFactory.ReviewRepo()

		review, err := srv.findOwnedReview(ctx, bookRepo, reviewRepo, input.BookID, input.UserID)
		if err != nil {
			return err
		}

		if err := reviewRepo.Delete(ctx, review.ID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to delete review")
		}

		avg, err := recomputeRating(ctx, bookRepo, reviewRepo, input.BookID)
		if err != nil {
			return err
		}

		output = &usecase.ReviewOutput{AverageRating: avg}

		return nil
	})
	srv.observe(reviewOpDelete, err)
	if err != nil {
		srv.log(ctx).Warn("Failed to delete review", slog.Any("bookID", input.BookID), slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete review")
	}

	return output, nil
}

// findOwnedReview locks the book, loads the acting user's review of it and checks ownership.
func (srv *reviewService) findOwnedReview(
	ctx context.Context,
	bookRepo repository.BookRepository,
	reviewRepo repository.ReviewRepository,
	bookID, userID uuid.UUID,
) (*entity.Review, error) {
	if _, err := lockBook(ctx, bookRepo, bookID); err != nil {
		return nil, err
	}

	review, err := reviewRepo.FindByBookAndUser(ctx, bookID, userID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}

	if !review.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Review ownership violation", slog.Any("reviewID", review.ID), slog.Any("userID", userID))

		return nil, domainerrors.ErrReviewOwnershipViolation
	}

	return review, nil
}

func (srv *reviewService) observe(operation string, err error) {
	if srv.metrics != nil {
		srv.metrics.ObserveReviewMutation(operation, err)
	}
}

func lockBook(ctx context.Context, bookRepo repository.BookRepository, bookID uuid.UUID) (*entity.Book, error) {
	book, err := bookRepo.FindByIDForUpdate(ctx, bookID)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, domainerrors.ErrBookNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock book")
	}

	return book, nil
}

// recomputeRating writes the mean of the book's current review ratings back to the book.
func recomputeRating(
	ctx context.Context,
	bookRepo repository.BookRepository,
	reviewRepo repository.ReviewRepository,
	bookID uuid.UUID,
) (float64, error) {
	ratings, err := reviewRepo.ListRatingsByBook(ctx, bookID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list ratings")
	}

	avg := entity.AverageRating(ratings)
	if err := bookRepo.UpdateRating(ctx, bookID, avg); err != nil {
		return 0, errors.Wrap(err, "failed to update book rating")
	}

	return avg, nil
}

func validateNewReview(input *usecase.AddReviewInput) error {
	if !entity.IsValidRating(input.Rating) {
		return invalidRatingError()
	}
	if strings.TrimSpace(input.ReviewText) == "" {
		return blankReviewTextError()
	}

	return nil
}

func blankReviewTextError() error {
	return domainerrors.NewValidationError("Rating and comment are required", domainerrors.FieldError{
		Field:   "reviewText",
		Message: "reviewText is required",
	})
}

func invalidRatingError() error {
	return domainerrors.NewValidationError("", domainerrors.FieldError{
		Field:   "rating",
		Message: "rating must be an integer between 1 and 5",
	})
}
