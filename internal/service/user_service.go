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

type UserService interface {
	Save(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error)
	FindAll(ctx context.Context, query dto.PageQuery) (*dto.PageResponse[dto.UserResponse], error)
	FindByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UserRequest) (*dto.UserResponse, error)
	UpdatePartially(ctx context.Context, id uint, req dto.UserPatchRequest) (*dto.UserResponse, error)
	DeleteByID(ctx context.Context, id uint) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Save(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	user := mapper.ToUser(req)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(user), nil
}

func (s *userService) FindAll(ctx context.Context, query dto.PageQuery) (*dto.PageResponse[dto.UserResponse], error) {
	query = query.Normalized()

	users, err := s.users.FindAll(ctx, query.Offset(), query.Size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *mapper.ToUserResponse(&users[i]))
	}

	return dto.NewPageResponse(responses, query), nil
}

func (s *userService) FindByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, asUserLookupError(err, id)
	}
	return mapper.ToUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, asUserLookupError(err, id)
	}

	mapper.ApplyUser(req, user)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(user), nil
}

func (s *userService) UpdatePartially(ctx context.Context, id uint, req dto.UserPatchRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, asUserLookupError(err, id)
	}

	mapper.PatchUser(req, user)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(user), nil
}

func (s *userService) DeleteByID(ctx context.Context, id uint) error {
	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewNotFound("User", id)
	}
	return s.users.DeleteByID(ctx, id)
}

func asUserLookupError(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFound("User", id)
	}
	return err
}
