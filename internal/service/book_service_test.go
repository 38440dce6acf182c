package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/entity"
	"github.com/bookshelfhq/librarysystem/pkg/apperror"
)

func duneRequest() dto.BookRequest {
	return dto.BookRequest{
		Title:           "Dune",
		Description:     "Desert planet saga",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1965,
	}
}

func TestBookServiceSaveByLibraryID(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	library, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)

	t.Run("creates under an existing library", func(t *testing.T) {
		book, err := f.books.SaveByLibraryID(ctx, library.ID, duneRequest())
		require.NoError(t, err)

		assert.NotZero(t, book.ID)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, 1965, book.PublicationYear)
		require.NotNil(t, book.LibraryID)
		assert.Equal(t, library.ID, *book.LibraryID)

		reloaded, err := f.libraries.FindByID(ctx, library.ID)
		require.NoError(t, err)
		assert.Contains(t, reloaded.BooksIDs, book.ID)
	})

	t.Run("missing library creates nothing", func(t *testing.T) {
		_, err := f.books.SaveByLibraryID(ctx, 999, duneRequest())
		assert.True(t, errors.Is(err, apperror.ErrNotFound))

		var count int64
		require.NoError(t, f.db.Model(&entity.Book{}).Where("title = ?", "Dune").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestBookServiceFindAll(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	library, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := f.books.SaveByLibraryID(ctx, library.ID, duneRequest())
		require.NoError(t, err)
	}

	page, err := f.books.FindAll(ctx, dto.PageQuery{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.NumberOfElements)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 2, page.Size)
}

func TestBookServiceUpdate(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	library, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)
	book, err := f.books.SaveByLibraryID(ctx, library.ID, duneRequest())
	require.NoError(t, err)

	updated, err := f.books.Update(ctx, book.ID, dto.BookRequest{
		Title:           "Dune Messiah",
		Description:     "The sequel",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1969,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, 1969, updated.PublicationYear)
	// Ownership is never altered by update.
	require.NotNil(t, updated.LibraryID)
	assert.Equal(t, library.ID, *updated.LibraryID)

	year := 1970
	patched, err := f.books.UpdatePartially(ctx, book.ID, dto.BookPatchRequest{
		PublicationYear: &year,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", patched.Title)
	assert.Equal(t, 1970, patched.PublicationYear)
	assert.Equal(t, library.ID, *patched.LibraryID)

	_, err = f.books.Update(ctx, 4242, duneRequest())
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.EqualError(t, err, "Book with ID 4242 was not found")
}

func TestBookServiceDeleteByID(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	library, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)
	book, err := f.books.SaveByLibraryID(ctx, library.ID, duneRequest())
	require.NoError(t, err)

	require.NoError(t, f.books.DeleteByID(ctx, book.ID))

	_, err = f.books.FindByID(ctx, book.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	err = f.books.DeleteByID(ctx, book.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
