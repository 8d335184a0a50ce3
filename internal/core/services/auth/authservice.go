package auth

import (
	"context"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

type IAuthService interface {
	ProviderName() domain.Provider
	Login(ctx context.Context, student *domain.Student) (string, error)
}
