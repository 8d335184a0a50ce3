package studentrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/cgrader-2025.net/internal/core/ports/primary"
	"gitlab.com/cgrader-2025.net/internal/core/ports/secondary"
	"gitlab.com/cgrader-2025.net/internal/domain"
)

var _ secondary.StudentPort = (*studentRepo)(nil)

type studentRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.StudentPort {
	return &studentRepo{
		db:     db,
		logger: logger,
	}
}

func (s *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	query := `
		INSERT INTO students (
			user_name, password_hash, student_code, email, auth_provider, google_id
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		student.UserName,
		student.PasswordHash,
		student.StudentCode,
		student.Email,
		student.AuthProvider,
		student.GoogleID,
	)
	if err != nil {
		s.logger.Error("Failed to create student", "userName", student.UserName, "error", err)
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

func (s *studentRepo) GetByUserName(ctx context.Context, userName string) (*domain.Student, error) {
	query := `
		SELECT id, user_name, password_hash, student_code, email, auth_provider, google_id
		FROM students
		WHERE user_name = $1
	`
	return s.getOne(ctx, query, userName)
}

func (s *studentRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Student, error) {
	query := `
		SELECT id, user_name, password_hash, student_code, email, auth_provider, google_id
		FROM students
		WHERE google_id = $1
	`
	return s.getOne(ctx, query, googleID)
}

func (s *studentRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.Student, error) {
	var student domain.Student
	if err := s.db.GetContext(ctx, &student, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}
