// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email    string
	Password string
	Username string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by both sign-up and login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines account creation and credential exchange.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
