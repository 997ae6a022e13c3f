package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SigninRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has an invalid format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type JWTResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// UserView is the public shape of a user record (no password hash).
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
