package dto

import "github.com/bookshelfhq/librarysystem/internal/entity"

type LibraryRequest struct {
	Title       string            `json:"title" binding:"required,max=255"`
	Description string            `json:"description" binding:"required,max=255"`
	City        string            `json:"city" binding:"required,max=255"`
	OpeningTime *entity.TimeOfDay `json:"openingTime" binding:"required"`
	ClosingTime *entity.TimeOfDay `json:"closingTime" binding:"required"`
}

// LibraryPatchRequest carries a partial update; nil fields are left untouched.
type LibraryPatchRequest struct {
	Title       *string           `json:"title" binding:"omitempty,max=255"`
	Description *string           `json:"description" binding:"omitempty,max=255"`
	City        *string           `json:"city" binding:"omitempty,max=255"`
	OpeningTime *entity.TimeOfDay `json:"openingTime"`
	ClosingTime *entity.TimeOfDay `json:"closingTime"`
}

type LibraryResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	City        string           `json:"city"`
	OpeningTime entity.TimeOfDay `json:"openingTime"`
	ClosingTime entity.TimeOfDay `json:"closingTime"`
	BooksIDs    []uint           `json:"booksIds"`
	UsersIDs    []uint           `json:"usersIds"`
}
