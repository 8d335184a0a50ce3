package auth

import (
	"context"
	"strings"

	"gitlab.com/cgrader-2025.net/internal/config"
	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
	"gitlab.com/cgrader-2025.net/internal/domain"
	"gitlab.com/cgrader-2025.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	studentPort secondary.StudentPort
	jwtProvider primary.JWTService
	Config      *config.GGAuthConfig
}

func NewGoogleAuthService(studentPort secondary.StudentPort, jwtProvider primary.JWTService, cfg *config.GGAuthConfig) IAuthService {
	return &googleAuthService{
		studentPort: studentPort,
		jwtProvider: jwtProvider,
		Config:      cfg,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

func (g googleAuthService) Login(ctx context.Context, student *domain.Student) (string, error) {
	if student.GoogleID == nil {
		return "", errs.InvalidCredentials
	}
	if student.AuthProvider != string(domain.ProviderGoogle) {
		return "", errs.InvalidCredentials
	}
	if student.Email == nil {
		return "", errs.EmailRequired
	}
	if g.Config.ForceCampusDomain && !strings.HasSuffix(*student.Email, "@"+g.Config.CampusDomain) {
		return "", errs.InvalidCredentials
	}

	stored, err := g.studentPort.GetByGoogleID(ctx, *student.GoogleID)
	if err != nil {
		return "", err
	}
	if stored != nil {
		return generateToken(ctx, g.jwtProvider, stored)
	}

	// First login: provision the student from the Google profile.
	student.PasswordHash = nil
	student.UserName = strings.Split(*student.Email, "@")[0]
	student.AuthProvider = string(domain.ProviderGoogle)
	student.StudentCode = strings.Split(*student.Email, "@")[0]
	if err := g.studentPort.Create(ctx, student); err != nil {
		return "", errs.FailedToCreateStudent
	}

	return generateToken(ctx, g.jwtProvider, student)
}
