package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/pkg/apperror"
	"go-jobplus-backend/pkg/password"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

type registerInput struct {
	Username string `validate:"required,min=2,max=32"`
	Email    string `validate:"required,email,max=64"`
	Password string `validate:"required,min=6"`
}

func (u *authUsecase) Register(ctx context.Context, username, email, plaintext string, role domain.Role) (*domain.User, error) {
	if err := u.validate.Struct(registerInput{Username: username, Email: email, Password: plaintext}); err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}
	if !role.Valid() {
		return nil, apperror.Unprocessable("Unknown role")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique indexes on username and email are the source of truth for
	// duplicates; the repository surfaces them as a conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, username, plaintext string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same answer for unknown user and wrong password.
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, err
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	return user, nil
}

func (u *authUsecase) SetPassword(ctx context.Context, userID int64, plaintext string) error {
	if len(plaintext) < 6 {
		return apperror.Unprocessable("Password must be at least 6 characters")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

func (u *authUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) DeleteUser(ctx context.Context, id int64) error {
	// Owned company and deliveries survive with their user reference
	// cleared by the schema; collected-job rows go with the user.
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
