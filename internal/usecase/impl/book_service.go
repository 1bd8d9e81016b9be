package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
	Logger   *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo: params.BookRepo,
		logger:   params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook catalogues a new, never-reviewed book.
func (srv *bookService) AddBook(ctx context.Context, input *usecase.AddBookInput) (*entity.Book, error) {
	fields := []struct{ name, value string }{
		{"title", input.Title},
		{"author", input.Author},
		{"genre", input.Genre},
		{"summary", input.Summary},
	}

	var missing []domainerrors.FieldError
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, domainerrors.FieldError{Field: f.name, Message: f.name + " is required"})
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError("All fields are required", missing...)
	}

	book := entity.NewBook(input.Title, input.Author, input.Genre, input.Summary, input.AddedBy)
	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.log(ctx).Error("Failed to add book", slog.String("title", input.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book added", slog.Any("bookID", book.ID), slog.Any("addedBy", book.AddedBy))

	return book, nil
}

// ListBooks returns one page of the whole catalogue.
func (srv *bookService) ListBooks(ctx context.Context, page usecase.PageInput) (*usecase.BookPage, error) {
	return srv.list(ctx, repository.BookFilter{}, page)
}

// FilterBooks returns one page of books whose author and/or genre match exactly.
func (srv *bookService) FilterBooks(ctx context.Context, input *usecase.FilterBooksInput) (*usecase.BookPage, error) {
	return srv.list(ctx, repository.BookFilter{Author: input.Author, Genre: input.Genre}, input.PageInput)
}

func (srv *bookService) list(ctx context.Context, filter repository.BookFilter, page usecase.PageInput) (*usecase.BookPage, error) {
	page = page.Normalize()

	books, total, err := srv.bookRepo.List(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return usecase.NewBookPage(books, total, page), nil
}

// SearchBooks matches author and/or title case-insensitively by substring.
func (srv *bookService) SearchBooks(ctx context.Context, input *usecase.SearchBooksInput) ([]*entity.Book, error) {
	if input.Author == "" && input.Title == "" {
		return nil, domainerrors.NewValidationError("At least one of author or title is required for search")
	}

	books, err := srv.bookRepo.Search(ctx, repository.BookSearch{Author: input.Author, Title: input.Title})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	return books, nil
}

// GetBook returns a single book with its review IDs.
func (srv *bookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, domainerrors.ErrBookNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get book")
	}

	return book, nil
}
