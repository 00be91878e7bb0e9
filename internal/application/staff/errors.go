package staff

import "errors"

var (
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrAdminProtected = errors.New("default administrator cannot be deleted")
)
