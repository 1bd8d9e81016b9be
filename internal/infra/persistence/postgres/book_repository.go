package postgres

import (
	"context"
	"strings"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// creationOrder keeps pages and review ID lists stable.
const creationOrder = "created_at ASC, id ASC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// bookRepository implements the domain.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// Create persists a new book and copies the generated ID and timestamps back onto the entity.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookCreationFailed.WrapMessage("adding user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBookCreationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.AddDate = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindByID retrieves a book with the IDs of its reviews in creation order.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate is FindByID with a row lock held until the surrounding transaction ends.
func (repo *bookRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	locked := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findByID(ctx, locked, id)
}

func (repo *bookRepository) findByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	err := db.Where("id = ?", id).First(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	books := []*model.BookModel{&bookM}
	if err := repo.loadReviewIDs(ctx, books); err != nil {
		return nil, err
	}

	return toBookDomain(&bookM), nil
}

// List returns one page of books matching filter, oldest first, plus the total number of matches.
func (repo *bookRepository) List(ctx context.Context, filter repository.BookFilter, offset, limit int) ([]*entity.Book, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.BookModel{}).Scopes(matchFilter(filter)).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count books")
	}
	if total == 0 || offset < 0 || int64(offset) >= total {
		return []*entity.Book{}, total, nil
	}

	var bookMs []*model.BookModel
	err := repo.db.WithContext(ctx).
		Scopes(matchFilter(filter)).
		Order(creationOrder).
		Offset(offset).
		Limit(limit).
		Find(&bookMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list books")
	}
	if err := repo.loadReviewIDs(ctx, bookMs); err != nil {
		return nil, 0, err
	}

	return toBookDomains(bookMs), total, nil
}

// Search returns every book whose author and/or title contain the given terms, ignoring case.
// Wildcard characters in the terms are matched literally.
func (repo *bookRepository) Search(ctx context.Context, search repository.BookSearch) ([]*entity.Book, error) {
	query := repo.db.WithContext(ctx).Model(&model.BookModel{})
	if search.Author != "" {
		query = query.Where("author ILIKE ?", containsPattern(search.Author))
	}
	if search.Title != "" {
		query = query.Where("title ILIKE ?", containsPattern(search.Title))
	}

	var bookMs []*model.BookModel
	if err := query.Order(creationOrder).Find(&bookMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}
	if err := repo.loadReviewIDs(ctx, bookMs); err != nil {
		return nil, err
	}

	return toBookDomains(bookMs), nil
}

// UpdateRating writes the cached average rating of a book.
func (repo *bookRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("rating", rating)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// loadReviewIDs fills the Reviews association of each book with ID-only rows in creation order.
func (repo *bookRepository) loadReviewIDs(ctx context.Context, books []*model.BookModel) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(books))
	byID := make(map[uuid.UUID]*model.BookModel, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
		byID[b.ID] = b
		b.Reviews = []model.ReviewModel{}
	}

	var reviews []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Select("id", "book_id").
		Where("book_id IN ?", ids).
		Order(creationOrder).
		Find(&reviews).Error
	if err != nil {
		return errors.Wrap(err, "failed to load review ids")
	}

	for _, r := range reviews {
		if b, ok := byID[r.BookID]; ok {
			b.Reviews = append(b.Reviews, r)
		}
	}

	return nil
}

func matchFilter(filter repository.BookFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Author != "" {
			db = db.Where("author = ?", filter.Author)
		}
		if filter.Genre != "" {
			db = db.Where("genre = ?", filter.Genre)
		}

		return db
	}
}

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	reviewIDs := make([]uuid.UUID, 0, len(data.Reviews))
	for _, r := range data.Reviews {
		reviewIDs = append(reviewIDs, r.ID)
	}

	return &entity.Book{
		ID:        data.ID,
		Title:     data.Title,
		Author:    data.Author,
		Genre:     data.Genre,
		Summary:   data.Summary,
		AddedBy:   data.AddedBy,
		Rating:    data.Rating,
		ReviewIDs: reviewIDs,
		AddDate:   data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toBookDomains(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, b := range data {
		books = append(books, toBookDomain(b))
	}

	return books
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
// The review association is owned by the reviews table and is not written from here.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:        data.ID,
		Title:     data.Title,
		Author:    data.Author,
		Genre:     data.Genre,
		Summary:   data.Summary,
		AddedBy:   data.AddedBy,
		Rating:    data.Rating,
		CreatedAt: data.AddDate,
	}
}
