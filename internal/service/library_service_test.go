package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/entity"
	"github.com/bookshelfhq/librarysystem/internal/repository"
	"github.com/bookshelfhq/librarysystem/internal/testutil"
	"github.com/bookshelfhq/librarysystem/pkg/apperror"
)

func timePtr(hour, minute int) *entity.TimeOfDay {
	td := entity.NewTimeOfDay(hour, minute)
	return &td
}

func centralLibraryRequest() dto.LibraryRequest {
	return dto.LibraryRequest{
		Title:       "Central",
		Description: "Main branch",
		City:        "Metropolis",
		OpeningTime: timePtr(8, 0),
		ClosingTime: timePtr(20, 0),
	}
}

type libraryFixture struct {
	libraries LibraryService
	users     UserService
	books     BookService
	db        *gorm.DB
}

func newLibraryFixture(t *testing.T) *libraryFixture {
	db := testutil.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	bookRepo := repository.NewBookRepository(db)

	return &libraryFixture{
		libraries: NewLibraryService(libraryRepo, userRepo),
		users:     NewUserService(userRepo),
		books:     NewBookService(bookRepo, libraryRepo),
		db:        db,
	}
}

func TestLibraryServiceSave(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	resp, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Central", resp.Title)
	assert.Equal(t, "Metropolis", resp.City)
	assert.Equal(t, "08:00", resp.OpeningTime.String())
	assert.Equal(t, "20:00", resp.ClosingTime.String())
	assert.Empty(t, resp.BooksIDs)
	assert.Empty(t, resp.UsersIDs)
}

func TestLibraryServiceFindByID(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	created, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)

	found, err := f.libraries.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, found.Title)
	assert.Equal(t, "08:00", found.OpeningTime.String())

	_, err = f.libraries.FindByID(ctx, 404)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.EqualError(t, err, "Library with ID 404 was not found")
}

func TestLibraryServiceUpdatePartially(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	created, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)

	city := "Gotham"
	patched, err := f.libraries.UpdatePartially(ctx, created.ID, dto.LibraryPatchRequest{
		City:        &city,
		ClosingTime: timePtr(22, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, "Central", patched.Title)
	assert.Equal(t, "Gotham", patched.City)
	assert.Equal(t, "08:00", patched.OpeningTime.String())
	assert.Equal(t, "22:00", patched.ClosingTime.String())
}

func TestLibraryServiceMembership(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	library, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)
	alice, err := f.users.Save(ctx, dto.UserRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	t.Run("add member", func(t *testing.T) {
		resp, err := f.libraries.AddUserByUserID(ctx, library.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{alice.ID}, resp.UsersIDs)

		user, err := f.users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{library.ID}, user.LibrariesIDs)
	})

	t.Run("adding twice is idempotent", func(t *testing.T) {
		resp, err := f.libraries.AddUserByUserID(ctx, library.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{alice.ID}, resp.UsersIDs)
	})

	t.Run("remove member restores prior state", func(t *testing.T) {
		resp, err := f.libraries.DeleteUserByUserID(ctx, library.ID, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, resp.UsersIDs)

		user, err := f.users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, user.LibrariesIDs)
	})

	t.Run("removing an absent member is a no-op", func(t *testing.T) {
		resp, err := f.libraries.DeleteUserByUserID(ctx, library.ID, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, resp.UsersIDs)
	})

	t.Run("missing library or user is not found", func(t *testing.T) {
		_, err := f.libraries.AddUserByUserID(ctx, 999, alice.ID)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))

		_, err = f.libraries.AddUserByUserID(ctx, library.ID, 999)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestLibraryServiceDeleteCascade(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()

	library, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)
	alice, err := f.users.Save(ctx, dto.UserRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = f.libraries.AddUserByUserID(ctx, library.ID, alice.ID)
	require.NoError(t, err)

	book, err := f.books.SaveByLibraryID(ctx, library.ID, dto.BookRequest{
		Title:           "Dune",
		Description:     "Desert planet saga",
		Author:          "Herbert",
		Genre:           "SciFi",
		PublicationYear: 1965,
	})
	require.NoError(t, err)

	require.NoError(t, f.libraries.DeleteByID(ctx, library.ID))

	_, err = f.libraries.FindByID(ctx, library.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// Owned books die with the library.
	_, err = f.books.FindByID(ctx, book.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// Member users survive, data intact, membership gone.
	user, err := f.users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.LibrariesIDs)
}

func TestLibraryServiceDeleteNotFound(t *testing.T) {
	f := newLibraryFixture(t)

	err := f.libraries.DeleteByID(context.Background(), 77)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestLibraryRepositoryFirstAndLast(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()
	repo := repository.NewLibraryRepository(f.db)

	first, err := f.libraries.Save(ctx, centralLibraryRequest())
	require.NoError(t, err)

	req := centralLibraryRequest()
	req.Title = "Annex"
	last, err := f.libraries.Save(ctx, req)
	require.NoError(t, err)

	gotFirst, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, gotFirst.ID)

	gotLast, err := repo.FindLast(ctx)
	require.NoError(t, err)
	assert.Equal(t, last.ID, gotLast.ID)
}
