package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Bio   string `json:"bio"`
}

type CreateUserResponse User

type GetUserRequest struct {
	ID int64 `json:"id"`
}

type GetUserResponse User

type GetUsersRequest struct {
	Skip   int    `json:"skip"`
	Limit  int    `json:"limit"`
	Name   string `json:"name"`
	MinAge *int   `json:"min_age"`
	MaxAge *int   `json:"max_age"`
}

type GetUsersResponse []User

type UpdateUserRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Bio   string `json:"bio"`
}

type UpdateUserResponse User

// PatchUserRequest changes only the supplied fields. Pointers distinguish an
// absent field from its zero value.
type PatchUserRequest struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
	Bio   *string `json:"bio"`
}

type PatchUserResponse User

type DeleteUserRequest struct {
	ID int64 `json:"id"`
}

type DeleteUserResponse struct{}

type SearchUsersRequest struct {
	Term string `json:"term"`
}

type SearchUsersResponse []User

type ServiceInfoRequest struct{}

type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
