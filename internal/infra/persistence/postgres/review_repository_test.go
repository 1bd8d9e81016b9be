package postgres

import (
	"errors"
	"testing"
	"time"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	newID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "reviews" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))

	review := &entity.Review{BookID: uuid.New(), UserID: uuid.New(), Rating: 4, ReviewText: "ok"}
	err := repo.Create(t.Context(), review)

	require.NoError(t, err)
	assert.Equal(t, newID, review.ID)
	assert.False(t, review.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`INSERT INTO "reviews"`).WillReturnError(errors.New(uniqueViolation))

	err := repo.Create(t.Context(), &entity.Review{BookID: uuid.New(), UserID: uuid.New(), Rating: 4})

	assert.ErrorIs(t, err, repository.ErrDuplicateReview)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByBookAndUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	bookID, userID, reviewID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE book_id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "user_id", "rating", "review_text", "created_at", "updated_at"}).
			AddRow(reviewID, bookID, userID, 5, "great", now, now))

	review, err := repo.FindByBookAndUser(t.Context(), bookID, userID)

	require.NoError(t, err)
	assert.Equal(t, reviewID, review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.True(t, review.IsOwnedBy(userID))
}

func TestReviewRepository_FindByBookAndUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "reviews"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByBookAndUser(t.Context(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}

func TestReviewRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	reviewID := uuid.New()
	mock.ExpectExec(`UPDATE "reviews" SET "rating"=\$1,"review_text"=\$2,"updated_at"=\$3 WHERE "id" = \$4`).
		WithArgs(2, "changed my mind", sqlmock.AnyArg(), reviewID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(t.Context(), &entity.Review{ID: reviewID, Rating: 2, ReviewText: "changed my mind"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	reviewID := uuid.New()
	mock.ExpectExec(`DELETE FROM "reviews" WHERE id = \$1`).
		WithArgs(reviewID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(t.Context(), reviewID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_Delete_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(`DELETE FROM "reviews"`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(t.Context(), uuid.New()), repository.ErrReviewNotFound)
}

func TestReviewRepository_ListRatingsByBook(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	bookID := uuid.New()
	mock.ExpectQuery(`SELECT "rating" FROM "reviews" WHERE book_id = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs(bookID).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(4).AddRow(2))

	ratings, err := repo.ListRatingsByBook(t.Context(), bookID)

	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, ratings)
	assert.InDelta(t, 3.0, entity.AverageRating(ratings), 1e-9)
}
