package application

import (
	"context"
	"fmt"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/domain"
	"github.com/google/uuid"
)

type UserCase struct {
	users  domain.UserRepository
	logger logging.Logger
}

func NewUserCase(users domain.UserRepository, logger logging.Logger) *UserCase {
	return &UserCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UserCase) CreateUser(ctx context.Context, request domain.CreateUserRequest) (domain.UserProfile, error) {
	uc.logger.Debug("creating user", "name", request.Name)

	nameTaken, err := uc.users.IsNameTaken(ctx, request.Name)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if nameTaken {
		return domain.UserProfile{}, &domain.DuplicateUserError{Msg: fmt.Sprintf("name %q is already used", request.Name)}
	}

	accountTaken, err := uc.users.IsAccountNumberTaken(ctx, request.AccountNumber)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if accountTaken {
		return domain.UserProfile{}, &domain.DuplicateUserError{Msg: fmt.Sprintf("account number %q is already used", request.AccountNumber)}
	}

	return uc.users.InsertUser(ctx, uuid.NewString(), request)
}

func (uc *UserCase) UpdateUser(ctx context.Context, request domain.UpdateUserRequest) (domain.UserProfile, error) {
	uc.logger.Debug("updating user", "id", request.ID)

	if _, err := uuid.Parse(request.ID); err != nil {
		return domain.UserProfile{}, &domain.InvalidArgumentsError{Msg: "id must be a valid uuid"}
	}

	nameTaken, err := uc.users.IsNameTakenByOther(ctx, request.Name, request.ID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if nameTaken {
		return domain.UserProfile{}, &domain.DuplicateUserError{Msg: fmt.Sprintf("name %q is already used", request.Name)}
	}

	return uc.users.UpdateUserName(ctx, request.ID, request.Name)
}
