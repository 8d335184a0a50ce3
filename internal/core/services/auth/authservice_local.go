package auth

import (
	"context"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
	"gitlab.com/cgrader-2025.net/internal/domain"
	"gitlab.com/cgrader-2025.net/internal/global/logger"
	"gitlab.com/cgrader-2025.net/internal/static/errs"
)

var _ IAuthService = &localAuthService{}

type localAuthService struct {
	studentPort secondary.StudentPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	studentPort secondary.StudentPort,
	jwtProvider primary.JWTService,
) IAuthService {
	return &localAuthService{
		studentPort: studentPort,
		jwtProvider: jwtProvider,
	}
}

func (l localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (l localAuthService) Login(ctx context.Context, student *domain.Student) (string, error) {
	stored, err := l.studentPort.GetByUserName(ctx, student.UserName)
	if err != nil {
		return "", err
	}
	if stored == nil || stored.PasswordHash == nil || student.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}
	valid, err := l.jwtProvider.VerifyPassword(ctx, *stored.PasswordHash, *student.PasswordHash)
	if err != nil || !valid {
		return "", errs.InvalidCredentials
	}

	return generateToken(ctx, l.jwtProvider, stored)
}

func generateToken(ctx context.Context, jwtProvider primary.JWTService, student *domain.Student) (string, error) {
	authPayload := domain.AuthPayload{
		Username:   student.UserName,
		Permission: []string{"grader.execute"},
	}

	data, err := json.Marshal(authPayload)
	if err != nil {
		return "", errs.InternalError
	}
	var claims map[string]interface{}
	if err := json.Unmarshal(data, &claims); err != nil {
		logger.Error("Failed to unmarshal auth payload", "error", err)
		return "", errs.InternalError
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		return "", errs.GeneratingToken
	}
	return token, nil
}
