package mapper

import (
	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/entity"
)

// ToLibrary builds a new Library from a request. The id, owned books and
// member set are never taken from the wire.
func ToLibrary(req dto.LibraryRequest) *entity.Library {
	library := &entity.Library{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
	}
	if req.OpeningTime != nil {
		library.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		library.ClosingTime = *req.ClosingTime
	}
	return library
}

func ToLibraryResponse(library *entity.Library) *dto.LibraryResponse {
	booksIDs := make([]uint, 0, len(library.Books))
	for _, book := range library.Books {
		booksIDs = append(booksIDs, book.ID)
	}

	usersIDs := make([]uint, 0, len(library.Users))
	for _, user := range library.Users {
		usersIDs = append(usersIDs, user.ID)
	}

	return &dto.LibraryResponse{
		ID:          library.ID,
		Title:       library.Title,
		Description: library.Description,
		City:        library.City,
		OpeningTime: library.OpeningTime,
		ClosingTime: library.ClosingTime,
		BooksIDs:    booksIDs,
		UsersIDs:    usersIDs,
	}
}

// ApplyLibrary overwrites every scalar field from a full-update request.
func ApplyLibrary(req dto.LibraryRequest, library *entity.Library) {
	library.Title = req.Title
	library.Description = req.Description
	library.City = req.City
	if req.OpeningTime != nil {
		library.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		library.ClosingTime = *req.ClosingTime
	}
}

// PatchLibrary overwrites only the fields present in a partial-update request.
func PatchLibrary(req dto.LibraryPatchRequest, library *entity.Library) {
	if req.Title != nil {
		library.Title = *req.Title
	}
	if req.Description != nil {
		library.Description = *req.Description
	}
	if req.City != nil {
		library.City = *req.City
	}
	if req.OpeningTime != nil {
		library.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		library.ClosingTime = *req.ClosingTime
	}
}
