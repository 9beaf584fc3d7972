package domain

import "context"

type UserProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
}

type CreateUserRequest struct {
	Name          string
	Bank          string
	AccountNumber string
}

type UpdateUserRequest struct {
	ID   string
	Name string
}

type UserRepository interface {
	IsNameTaken(ctx context.Context, name string) (bool, error)
	IsNameTakenByOther(ctx context.Context, name string, userID string) (bool, error)
	IsAccountNumberTaken(ctx context.Context, accountNumber string) (bool, error)
	InsertUser(ctx context.Context, userID string, request CreateUserRequest) (UserProfile, error)
	UpdateUserName(ctx context.Context, userID string, name string) (UserProfile, error)
}

type UserService interface {
	CreateUser(ctx context.Context, request CreateUserRequest) (UserProfile, error)
	UpdateUser(ctx context.Context, request UpdateUserRequest) (UserProfile, error)
}
