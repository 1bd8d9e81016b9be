package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bookshelf/internal/delivery/api/middleware"
	"bookshelf/internal/delivery/api/response"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
	Logger *slog.Logger
}

// BookHandler serves the catalogue endpoints.
type BookHandler struct {
	bookUC usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler.
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		bookUC: params.BookUC,
		logger: params.Logger,
	}
}

// AddBookRequest represents the request body for cataloguing a book.
// Presence of every field is checked by the usecase.
type AddBookRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Genre   string `json:"genre"`
	Summary string `json:"summary"`
}

// AddBookResponse is returned after a book is catalogued.
type AddBookResponse struct {
	Message string        `json:"message"`
	Book    *BookResponse `json:"book"`
}

// BookPageResponse is one page of a listing.
type BookPageResponse struct {
	Books []*BookResponse `json:"books"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Pages int             `json:"pages"`
}

// SearchBooksResponse holds every book matching a search.
type SearchBooksResponse struct {
	Books []*BookResponse `json:"books"`
}

// AddBook catalogues a book on behalf of the caller.
func (h *BookHandler) AddBook(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var req AddBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	book, err := h.bookUC.AddBook(c.Request().Context(), &usecase.AddBookInput{
		Title:   req.Title,
		Author:  req.Author,
		Genre:   req.Genre,
		Summary: req.Summary,
		AddedBy: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, AddBookResponse{
		Message: "Book added successfully",
		Book:    toBookResponse(book),
	})
}

// ListBooks returns one page of the whole catalogue.
func (h *BookHandler) ListBooks(c echo.Context) error {
	page, err := h.bookUC.ListBooks(c.Request().Context(), parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookPageResponse(page))
}

// FilterBooks returns one page of books matching author and/or genre exactly.
func (h *BookHandler) FilterBooks(c echo.Context) error {
	page, err := h.bookUC.FilterBooks(c.Request().Context(), &usecase.FilterBooksInput{
		Author:    c.QueryParam("author"),
		Genre:     c.QueryParam("genre"),
		PageInput: parsePage(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookPageResponse(page))
}

// SearchBooks returns every book whose author and/or title contains the given terms.
func (h *BookHandler) SearchBooks(c echo.Context) error {
	books, err := h.bookUC.SearchBooks(c.Request().Context(), &usecase.SearchBooksInput{
		Author: c.QueryParam("author"),
		Title:  c.QueryParam("title"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SearchBooksResponse{Books: toBookResponses(books)})
}

// GetBook returns a single book.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := parseBookID(c.Param("id"), "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

// parsePage reads page and limit leniently; anything unparsable falls back to the defaults.
func parsePage(c echo.Context) usecase.PageInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.PageInput{Page: page, Limit: limit}.Normalize()
}

func parseBookID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("Invalid book ID", domainerrors.FieldError{
			Field:   field,
			Message: field + " must be a valid UUID",
		})
	}

	return id, nil
}

func toBookPageResponse(page *usecase.BookPage) BookPageResponse {
	return BookPageResponse{
		Books: toBookResponses(page.Books),
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
	}
}
