package dto

type UserRequest struct {
	Username  string  `json:"username" binding:"required,max=255"`
	FirstName *string `json:"firstName" binding:"omitempty,max=255"`
	LastName  *string `json:"lastName" binding:"omitempty,max=255"`
	Email     string  `json:"email" binding:"required,max=255,email"`
}

// UserPatchRequest carries a partial update; nil fields are left untouched.
type UserPatchRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=255"`
	FirstName *string `json:"firstName" binding:"omitempty,max=255"`
	LastName  *string `json:"lastName" binding:"omitempty,max=255"`
	Email     *string `json:"email" binding:"omitempty,max=255,email"`
}

type UserResponse struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        string  `json:"email"`
	LibrariesIDs []uint  `json:"librariesIds"`
}
