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

type LibraryService interface {
	Save(ctx context.Context, req dto.LibraryRequest) (*dto.LibraryResponse, error)
	FindAll(ctx context.Context, query dto.PageQuery) (*dto.PageResponse[dto.LibraryResponse], error)
	FindByID(ctx context.Context, id uint) (*dto.LibraryResponse, error)
	Update(ctx context.Context, id uint, req dto.LibraryRequest) (*dto.LibraryResponse, error)
	UpdatePartially(ctx context.Context, id uint, req dto.LibraryPatchRequest) (*dto.LibraryResponse, error)
	AddUserByUserID(ctx context.Context, libraryID, userID uint) (*dto.LibraryResponse, error)
	DeleteUserByUserID(ctx context.Context, libraryID, userID uint) (*dto.LibraryResponse, error)
	DeleteByID(ctx context.Context, id uint) error
}

type libraryService struct {
	libraries repository.LibraryRepository
	users     repository.UserRepository
}

func NewLibraryService(libraries repository.LibraryRepository, users repository.UserRepository) LibraryService {
	return &libraryService{libraries: libraries, users: users}
}

func (s *libraryService) Save(ctx context.Context, req dto.LibraryRequest) (*dto.LibraryResponse, error) {
	library := mapper.ToLibrary(req)
	if err := s.libraries.Create(ctx, library); err != nil {
		return nil, err
	}
	return mapper.ToLibraryResponse(library), nil
}

func (s *libraryService) FindAll(ctx context.Context, query dto.PageQuery) (*dto.PageResponse[dto.LibraryResponse], error) {
	query = query.Normalized()

	libraries, err := s.libraries.FindAll(ctx, query.Offset(), query.Size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LibraryResponse, 0, len(libraries))
	for i := range libraries {
		responses = append(responses, *mapper.ToLibraryResponse(&libraries[i]))
	}

	return dto.NewPageResponse(responses, query), nil
}

func (s *libraryService) FindByID(ctx context.Context, id uint) (*dto.LibraryResponse, error) {
	library, err := s.libraries.FindByID(ctx, id)
	if err != nil {
		return nil, asLibraryLookupError(err, id)
	}
	return mapper.ToLibraryResponse(library), nil
}

func (s *libraryService) Update(ctx context.Context, id uint, req dto.LibraryRequest) (*dto.LibraryResponse, error) {
	library, err := s.libraries.FindByID(ctx, id)
	if err != nil {
		return nil, asLibraryLookupError(err, id)
	}

	mapper.ApplyLibrary(req, library)
	if err := s.libraries.Update(ctx, library); err != nil {
		return nil, err
	}
	return mapper.ToLibraryResponse(library), nil
}

func (s *libraryService) UpdatePartially(ctx context.Context, id uint, req dto.LibraryPatchRequest) (*dto.LibraryResponse, error) {
	library, err := s.libraries.FindByID(ctx, id)
	if err != nil {
		return nil, asLibraryLookupError(err, id)
	}

	mapper.PatchLibrary(req, library)
	if err := s.libraries.Update(ctx, library); err != nil {
		return nil, err
	}
	return mapper.ToLibraryResponse(library), nil
}

// AddUserByUserID adds the user to the library's member set. Adding an
// already-present member is a no-op, not an error.
func (s *libraryService) AddUserByUserID(ctx context.Context, libraryID, userID uint) (*dto.LibraryResponse, error) {
	library, err := s.libraries.FindByID(ctx, libraryID)
	if err != nil {
		return nil, asLibraryLookupError(err, libraryID)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, asUserLookupError(err, userID)
	}

	if err := s.libraries.AppendUser(ctx, library, user); err != nil {
		return nil, err
	}

	return s.FindByID(ctx, libraryID)
}

// DeleteUserByUserID removes the user from the member set; removing an
// absent member is a no-op.
func (s *libraryService) DeleteUserByUserID(ctx context.Context, libraryID, userID uint) (*dto.LibraryResponse, error) {
	library, err := s.libraries.FindByID(ctx, libraryID)
	if err != nil {
		return nil, asLibraryLookupError(err, libraryID)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, asUserLookupError(err, userID)
	}

	if err := s.libraries.RemoveUser(ctx, library, user); err != nil {
		return nil, err
	}

	return s.FindByID(ctx, libraryID)
}

// DeleteByID removes the library and, by ownership, its books. Member
// users are unaffected.
func (s *libraryService) DeleteByID(ctx context.Context, id uint) error {
	exists, err := s.libraries.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound("Library", id)
	}
	return s.libraries.DeleteByID(ctx, id)
}

func asLibraryLookupError(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFound("Library", id)
	}
	return err
}
