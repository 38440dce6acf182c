package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/mapper"
	"github.com/bookshelfhq/librarysystem/internal/repository"
	"github.com/bookshelfhq/librarysystem/pkg/apperror"
)

type BookService interface {
	SaveByLibraryID(ctx context.Context, libraryID uint, req dto.BookRequest) (*dto.BookResponse, error)
	FindAll(ctx context.Context, query dto.PageQuery) (*dto.PageResponse[dto.BookResponse], error)
	FindByID(ctx context.Context, id uint) (*dto.BookResponse, error)
	Update(ctx context.Context, id uint, req dto.BookRequest) (*dto.BookResponse, error)
	UpdatePartially(ctx context.Context, id uint, req dto.BookPatchRequest) (*dto.BookResponse, error)
	DeleteByID(ctx context.Context, id uint) error
}

type bookService struct {
	books     repository.BookRepository
	libraries repository.LibraryRepository
}

func NewBookService(books repository.BookRepository, libraries repository.LibraryRepository) BookService {
	return &bookService{books: books, libraries: libraries}
}

// SaveByLibraryID creates a book owned by the given library. A missing
// library fails the call before any book row is written.
func (s *bookService) SaveByLibraryID(ctx context.Context, libraryID uint, req dto.BookRequest) (*dto.BookResponse, error) {
	library, err := s.libraries.FindByID(ctx, libraryID)
	if err != nil {
		return nil, asLibraryLookupError(err, libraryID)
	}

	book := mapper.ToBook(req)
	book.LibraryID = &library.ID

	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return mapper.ToBookResponse(book), nil
}

func (s *bookService) FindAll(ctx context.Context, query dto.PageQuery) (*dto.PageResponse[dto.BookResponse], error) {
	query = query.Normalized()

	books, err := s.books.FindAll(ctx, query.Offset(), query.Size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, *mapper.ToBookResponse(&books[i]))
	}

	return dto.NewPageResponse(responses, query), nil
}

func (s *bookService) FindByID(ctx context.Context, id uint) (*dto.BookResponse, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, asBookLookupError(err, id)
	}
	return mapper.ToBookResponse(book), nil
}

func (s *bookService) Update(ctx context.Context, id uint, req dto.BookRequest) (*dto.BookResponse, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, asBookLookupError(err, id)
	}

	mapper.ApplyBook(req, book)
	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}
	return mapper.ToBookResponse(book), nil
}

func (s *bookService) UpdatePartially(ctx context.Context, id uint, req dto.BookPatchRequest) (*dto.BookResponse, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, asBookLookupError(err, id)
	}

	mapper.PatchBook(req, book)
	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}
	return mapper.ToBookResponse(book), nil
}

func (s *bookService) DeleteByID(ctx context.Context, id uint) error {
	exists, err := s.books.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound("Book", id)
	}
	return s.books.DeleteByID(ctx, id)
}

func asBookLookupError(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFound("Book", id)
	}
	return err
}
