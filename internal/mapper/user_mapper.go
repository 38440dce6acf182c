package mapper

import (
	"github.com/bookshelfhq/librarysystem/internal/dto"
	"github.com/bookshelfhq/librarysystem/internal/entity"
)

// ToUser builds a new User from a request. The id and the membership set
// are never taken from the wire.
func ToUser(req dto.UserRequest) *entity.User {
	return &entity.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
}

func ToUserResponse(user *entity.User) *dto.UserResponse {
	ids := make([]uint, 0, len(user.Libraries))
	for _, library := range user.Libraries {
		ids = append(ids, library.ID)
	}

	return &dto.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		LibrariesIDs: ids,
	}
}

// ApplyUser overwrites every scalar field from a full-update request.
func ApplyUser(req dto.UserRequest, user *entity.User) {
	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
}

// PatchUser overwrites only the fields present in a partial-update request.
func PatchUser(req dto.UserPatchRequest, user *entity.User) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
}
