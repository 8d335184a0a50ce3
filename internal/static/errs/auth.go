package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError         = errors.New("internal error")
	GeneratingToken       = errors.New("error generating token")
	EmailRequired         = errors.New("email is required")
	FailedToCreateStudent = errors.New("failed to create student")
)
