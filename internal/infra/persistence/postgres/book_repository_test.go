package postgres

import (
	"testing"
	"time"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookColumns = []string{"id", "title", "author", "genre", "summary", "added_by", "rating", "created_at", "updated_at"}

func TestBookRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	newID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "books" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))

	book := entity.NewBook("Dune", "Frank Herbert", "SciFi", "Spice.", uuid.New())
	err := repo.Create(t.Context(), book)

	require.NoError(t, err)
	assert.Equal(t, newID, book.ID)
	assert.Equal(t, entity.DefaultBookRating, book.Rating)
	assert.False(t, book.AddDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_FindByID_WithReviewIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	bookID, adder := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "books" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(bookID, "Dune", "Frank Herbert", "SciFi", "Spice.", adder, 3.5, now, now))
	mock.ExpectQuery(`SELECT "id","book_id" FROM "reviews" WHERE book_id IN \(\$1\) ORDER BY created_at ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id"}).AddRow(first, bookID).AddRow(second, bookID))

	book, err := repo.FindByID(t.Context(), bookID)

	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 3.5, book.Rating)
	assert.Equal(t, []uuid.UUID{first, second}, book.ReviewIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	bookID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "books" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(bookID, "Dune", "Frank Herbert", "SciFi", "Spice.", uuid.New(), 3.0, now, now))
	mock.ExpectQuery(`SELECT "id","book_id" FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id"}))

	book, err := repo.FindByIDForUpdate(t.Context(), bookID)

	require.NoError(t, err)
	assert.Empty(t, book.ReviewIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "books"`).WillReturnRows(sqlmock.NewRows(bookColumns))

	_, err := repo.FindByID(t.Context(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrBookNotFound)
}

func TestBookRepository_List_FilterAndPage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	bookID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "books" WHERE author = \$1 AND genre = \$2`).
		WithArgs("Frank Herbert", "SciFi").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT \* FROM "books" WHERE author = \$1 AND genre = \$2 ORDER BY created_at ASC, id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(bookColumns).AddRow(bookID, "Dune", "Frank Herbert", "SciFi", "Spice.", uuid.New(), 3.0, now, now))
	mock.ExpectQuery(`SELECT "id","book_id" FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id"}))

	books, total, err := repo.List(t.Context(), repository.BookFilter{Author: "Frank Herbert", Genre: "SciFi"}, 20, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, books, 1)
	assert.Equal(t, bookID, books[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_List_PageBeyondEnd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "books"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	books, total, err := repo.List(t.Context(), repository.BookFilter{}, 10, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_List_NegativeOffsetIsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "books"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	books, total, err := repo.List(t.Context(), repository.BookFilter{}, -4, 4)

	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Search_EscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "books" WHERE author ILIKE \$1 AND title ILIKE \$2`).
		WithArgs(`%herbert%`, `%100\% \_pure%`).
		WillReturnRows(sqlmock.NewRows(bookColumns))

	books, err := repo.Search(t.Context(), repository.BookSearch{Author: "herbert", Title: "100% _pure"})

	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_UpdateRating(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	bookID := uuid.New()
	mock.ExpectExec(`UPDATE "books" SET "rating"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(0.0, sqlmock.AnyArg(), bookID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateRating(t.Context(), bookID, entity.EmptyReviewSetRating))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_UpdateRating_MissingBook(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookRepository(db)

	mock.ExpectExec(`UPDATE "books"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRating(t.Context(), uuid.New(), 4)

	assert.ErrorIs(t, err, repository.ErrBookNotFound)
}
