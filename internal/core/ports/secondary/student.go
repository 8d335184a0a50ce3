package secondary

import (
	"context"

	"gitlab.com/cgrader-2025.net/internal/domain"
)

type StudentPort interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByUserName(ctx context.Context, userName string) (*domain.Student, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.Student, error)
}
