package impl

import (
	"context"
	"testing"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	mockRepo "bookshelf/internal/mocks/repository"
	mockSvc "bookshelf/internal/mocks/service"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures wires the service to mocks bound to a single transaction.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	bookRepo   *mockRepo.MockBookRepository
	reviewRepo *mockRepo.MockReviewRepository
	metrics    *mockSvc.MockReviewMetrics
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	metrics := mockSvc.NewMockReviewMetrics(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager: txManager,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		factory:    mockRepo.NewMockRepositoryFactory(t),
		bookRepo:   mockRepo.NewMockBookRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		metrics:    metrics,
	}
}

// inTransaction routes the transaction to the fixture's repositories.
func (fx reviewServiceFixtures) inTransaction() {
	fx.factory.EXPECT().BookRepo().Return(fx.bookRepo)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
	expectTransaction(fx.txManager, fx.factory)
}

func TestReviewService_AddReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(nil, repository.ErrReviewNotFound)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, review *entity.Review) {
			review.ID = uuid.New()
		}).
		Return(nil)
	fx.reviewRepo.EXPECT().ListRatingsByBook(ctx, bookID).Return([]int{4, 2}, nil)
	fx.bookRepo.EXPECT().UpdateRating(ctx, bookID, 3.0).Return(nil)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpAdd, nil).Return()

	output, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{
		BookID: bookID, UserID: userID, Rating: 2, ReviewText: "meh",
	})

	require.NoError(t, err)
	assert.Equal(t, 3.0, output.AverageRating)
	assert.Equal(t, 2, output.Review.Rating)
	assert.Equal(t, "meh", output.Review.ReviewText)
	assert.True(t, output.Review.IsOwnedBy(userID))
}

func TestReviewService_AddReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(&entity.Review{UserID: userID}, nil)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpAdd, mock.Anything).Return()

	_, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{BookID: bookID, UserID: userID, Rating: 4, ReviewText: "again"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_AddReview_ConcurrentDuplicateRejectedByStorage(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(nil, repository.ErrReviewNotFound)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(repository.ErrDuplicateReview)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpAdd, mock.Anything).Return()

	_, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{BookID: bookID, UserID: userID, Rating: 4, ReviewText: "race"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_AddReview_BookNotFound(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID := uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(nil, repository.ErrBookNotFound)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpAdd, mock.Anything).Return()

	_, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{BookID: bookID, UserID: uuid.New(), Rating: 5, ReviewText: "ok"})

	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestReviewService_AddReview_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.AddReviewInput
		field string
	}{
		{name: "rating too low", input: usecase.AddReviewInput{Rating: 0, ReviewText: "x"}, field: "rating"},
		{name: "rating too high", input: usecase.AddReviewInput{Rating: 6, ReviewText: "x"}, field: "rating"},
		{name: "missing text", input: usecase.AddReviewInput{Rating: 3, ReviewText: " "}, field: "reviewText"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			_, err := fx.service.AddReview(context.Background(), &tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Fields()[0].Field)
		})
	}
}

func TestReviewService_AddReview_RatingWriteFailureFails(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(nil, repository.ErrReviewNotFound)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.reviewRepo.EXPECT().ListRatingsByBook(ctx, bookID).Return([]int{5}, nil)
	fx.bookRepo.EXPECT().UpdateRating(ctx, bookID, 5.0).Return(errors.New("disk full"))
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpAdd, mock.Anything).Return()

	output, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{BookID: bookID, UserID: userID, Rating: 5, ReviewText: "ok"})

	// The transaction manager rolls back on any returned error, dropping the inserted review.
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()
	existing := &entity.Review{ID: uuid.New(), BookID: bookID, UserID: userID, Rating: 2, ReviewText: "meh"}
	newRating, newText := 5, "grew on me"

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(existing, nil)
	fx.reviewRepo.EXPECT().
		Update(ctx, existing).
		Run(func(_ context.Context, review *entity.Review) {
			assert.Equal(t, 5, review.Rating)
			assert.Equal(t, "grew on me", review.ReviewText)
		}).
		Return(nil)
	fx.reviewRepo.EXPECT().ListRatingsByBook(ctx, bookID).Return([]int{4, 5}, nil)
	fx.bookRepo.EXPECT().UpdateRating(ctx, bookID, 4.5).Return(nil)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpUpdate, nil).Return()

	output, err := fx.service.UpdateReview(ctx, &usecase.UpdateReviewInput{
		BookID: bookID, UserID: userID, Rating: &newRating, ReviewText: &newText,
	})

	require.NoError(t, err)
	assert.Equal(t, 4.5, output.AverageRating)
	assert.Equal(t, "grew on me", output.Review.ReviewText)
}

func TestReviewService_UpdateReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(nil, repository.ErrReviewNotFound)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpUpdate, mock.Anything).Return()

	_, err := fx.service.UpdateReview(ctx, &usecase.UpdateReviewInput{BookID: bookID, UserID: userID})

	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_UpdateReview_NotOwner(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, actor := uuid.New(), uuid.New()
	foreign := &entity.Review{ID: uuid.New(), BookID: bookID, UserID: uuid.New(), Rating: 2, ReviewText: "theirs"}
	rating := 1

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, actor).Return(foreign, nil)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpUpdate, mock.Anything).Return()

	_, err := fx.service.UpdateReview(ctx, &usecase.UpdateReviewInput{BookID: bookID, UserID: actor, Rating: &rating})

	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnershipViolation)
	assert.Equal(t, 2, foreign.Rating)
}

func TestReviewService_UpdateReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)
	rating := 9

	_, err := fx.service.UpdateReview(context.Background(), &usecase.UpdateReviewInput{
		BookID: uuid.New(), UserID: uuid.New(), Rating: &rating,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_UpdateReview_BlankText(t *testing.T) {
	fx := createTestReviewService(t)
	blank := "   "

	_, err := fx.service.UpdateReview(context.Background(), &usecase.UpdateReviewInput{
		BookID: uuid.New(), UserID: uuid.New(), ReviewText: &blank,
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "reviewText", validationErr.Fields()[0].Field)
}

func TestReviewService_DeleteReview_LastReviewYieldsZero(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, userID := uuid.New(), uuid.New()
	existing := &entity.Review{ID: uuid.New(), BookID: bookID, UserID: userID, Rating: 4}

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, userID).Return(existing, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)
	fx.reviewRepo.EXPECT().ListRatingsByBook(ctx, bookID).Return([]int{}, nil)
	fx.bookRepo.EXPECT().UpdateRating(ctx, bookID, entity.EmptyReviewSetRating).Return(nil)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpDelete, nil).Return()

	output, err := fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{BookID: bookID, UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, 0.0, output.AverageRating)
	assert.Nil(t, output.Review)
}

func TestReviewService_DeleteReview_NotOwner(t *testing.T) {
	fx := createTestReviewService(t)
	fx.inTransaction()

	ctx := context.Background()
	bookID, actor := uuid.New(), uuid.New()

	fx.bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(&entity.Book{ID: bookID}, nil)
	fx.reviewRepo.EXPECT().FindByBookAndUser(ctx, bookID, actor).Return(&entity.Review{ID: uuid.New(), UserID: uuid.New()}, nil)
	fx.metrics.EXPECT().ObserveReviewMutation(reviewOpDelete, mock.Anything).Return()

	_, err := fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{BookID: bookID, UserID: actor})

	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnershipViolation)
}

func TestReviewService_WithoutMetrics(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewReviewService(ReviewServiceParams{TxManager: txManager, Logger: newDiscardLogger()})

	factory := mockRepo.NewMockRepositoryFactory(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	factory.EXPECT().BookRepo().Return(bookRepo)
	factory.EXPECT().ReviewRepo().Return(mockRepo.NewMockReviewRepository(t))
	expectTransaction(txManager, factory)

	ctx := context.Background()
	bookID := uuid.New()
	bookRepo.EXPECT().FindByIDForUpdate(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	_, err := service.DeleteReview(ctx, &usecase.DeleteReviewInput{BookID: bookID, UserID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}
