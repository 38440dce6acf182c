package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/entity"
)

func TestToBook(t *testing.T) {
	book := ToBook(dto.BookRequest{
		Title:           "Dune",
		Description:     "Desert planet saga",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1965,
	})

	assert.Zero(t, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 1965, book.PublicationYear)
	// The owning library comes from the service, not the request body.
	assert.Nil(t, book.LibraryID)
}

func TestToBookResponse(t *testing.T) {
	libraryID := uint(3)
	resp := ToBookResponse(&entity.Book{
		ID:              9,
		Title:           "Dune",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1965,
		LibraryID:       &libraryID,
	})

	assert.Equal(t, uint(9), resp.ID)
	assert.Equal(t, uint(3), *resp.LibraryID)
}

func TestApplyAndPatchBook(t *testing.T) {
	libraryID := uint(3)
	book := &entity.Book{
		ID:              9,
		Title:           "Dune",
		Description:     "Desert planet saga",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1965,
		LibraryID:       &libraryID,
	}

	ApplyBook(dto.BookRequest{
		Title:           "Dune Messiah",
		Description:     "The sequel",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1969,
	}, book)

	assert.Equal(t, "Dune Messiah", book.Title)
	assert.Equal(t, 1969, book.PublicationYear)
	assert.Equal(t, uint(3), *book.LibraryID)

	year := 1970
	PatchBook(dto.BookPatchRequest{PublicationYear: &year}, book)

	assert.Equal(t, "Dune Messiah", book.Title)
	assert.Equal(t, 1970, book.PublicationYear)
	assert.Equal(t, uint(3), *book.LibraryID)
}
