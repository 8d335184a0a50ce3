package domain

import "github.com/google/uuid"

type Student struct {
	ID           uuid.UUID `db:"id"`
	UserName     string    `db:"user_name"`
	PasswordHash *string   `db:"password_hash"`
	StudentCode  string    `db:"student_code"`
	Email        *string   `db:"email"`
	AuthProvider string    `db:"auth_provider"`
	GoogleID     *string   `db:"google_id"`
}
