package dto

type BookRequest struct {
	Title           string `json:"title" binding:"required,max=255"`
	Description     string `json:"description" binding:"required,max=255"`
	Author          string `json:"author" binding:"required,max=255"`
	Genre           string `json:"genre" binding:"required,max=255"`
	PublicationYear int    `json:"publicationYear" binding:"required,gt=0"`
}

// BookPatchRequest carries a partial update; nil fields are left untouched.
// The owning library is never part of an update.
type BookPatchRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=255"`
	Author          *string `json:"author" binding:"omitempty,max=255"`
	Genre           *string `json:"genre" binding:"omitempty,max=255"`
	PublicationYear *int    `json:"publicationYear" binding:"omitempty,gt=0"`
}

type BookResponse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear"`
	LibraryID       *uint  `json:"libraryId"`
}
