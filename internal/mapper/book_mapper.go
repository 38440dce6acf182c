package mapper

import (
	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/entity"
)

// ToBook builds a new Book from a request. The owning library is assigned
// by the service, never from the wire.
func ToBook(req dto.BookRequest) *entity.Book {
	return &entity.Book{
		Title:           req.Title,
		Description:     req.Description,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
	}
}

func ToBookResponse(book *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:              book.ID,
		Title:           book.Title,
		Description:     book.Description,
		Author:          book.Author,
		Genre:           book.Genre,
		PublicationYear: book.PublicationYear,
		LibraryID:       book.LibraryID,
	}
}

// ApplyBook overwrites every scalar field from a full-update request.
// The owning-library association is left alone.
func ApplyBook(req dto.BookRequest, book *entity.Book) {
	book.Title = req.Title
	book.Description = req.Description
	book.Author = req.Author
	book.Genre = req.Genre
	book.PublicationYear = req.PublicationYear
}

// PatchBook overwrites only the fields present in a partial-update request.
func PatchBook(req dto.BookPatchRequest, book *entity.Book) {
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Genre != nil {
		book.Genre = *req.Genre
	}
	if req.PublicationYear != nil {
		book.PublicationYear = *req.PublicationYear
	}
}
